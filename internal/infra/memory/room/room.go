package infra_memory_room

import (
	"context"
	"maps"
	"sync"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

// Driver is the in-process room table. Rooms are ephemeral by design:
// there is no durable backend, a restart drops every live room.
//
// One mutex serializes the whole table. Every operation is a couple of
// map touches, and rating fan-in for a single presenter never gets hot
// enough to justify per-room locking.
type Driver struct {
	mu    sync.RWMutex
	rooms map[model.RoomCode]*model.Room
}

func New() *Driver {
	return &Driver{rooms: make(map[model.RoomCode]*model.Room)}
}

func (d *Driver) Insert(_ context.Context, room *model.Room) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.rooms[room.Code]; exists {
		return usecase_room.ErrCodeConflict
	}
	d.rooms[room.Code] = room
	return nil
}

func (d *Driver) CreatorByCode(_ context.Context, code model.RoomCode) (model.ConnID, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	room, ok := d.rooms[code]
	if !ok {
		return model.EmptyConnID, usecase_room.ErrResourceNotFound
	}
	return room.CreatorID, nil
}

func (d *Driver) DeleteByCode(_ context.Context, code model.RoomCode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.rooms[code]; !ok {
		return usecase_room.ErrResourceNotFound
	}
	delete(d.rooms, code)
	return nil
}

func (d *Driver) RatingsByCode(_ context.Context, code model.RoomCode) (map[model.ConnID]model.Rating, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	room, ok := d.rooms[code]
	if !ok {
		return nil, usecase_room.ErrResourceNotFound
	}
	return maps.Clone(room.Ratings), nil
}

func (d *Driver) LiveCodes(_ context.Context) []model.RoomCode {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]model.RoomCode, 0, len(d.rooms))
	for code := range d.rooms {
		out = append(out, code)
	}
	return out
}

// UpsertRating sets the caller's entry and returns a snapshot of the
// table taken under the same lock, so the caller's stats reflect exactly
// this mutation.
func (d *Driver) UpsertRating(_ context.Context, code model.RoomCode, caller model.ConnID, value model.Rating) (map[model.ConnID]model.Rating, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[code]
	if !ok {
		return nil, usecase_room.ErrResourceNotFound
	}
	room.Ratings[caller] = value
	return maps.Clone(room.Ratings), nil
}

func (d *Driver) ClearRatings(_ context.Context, code model.RoomCode) (map[model.ConnID]model.Rating, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[code]
	if !ok {
		return nil, usecase_room.ErrResourceNotFound
	}
	clear(room.Ratings)
	return maps.Clone(room.Ratings), nil
}

func (d *Driver) DeleteRating(_ context.Context, code model.RoomCode, caller model.ConnID) (map[model.ConnID]model.Rating, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[code]
	if !ok {
		return nil, false, usecase_room.ErrResourceNotFound
	}
	_, had := room.Ratings[caller]
	delete(room.Ratings, caller)
	return maps.Clone(room.Ratings), had, nil
}
