package infra_memory_room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

func TestInsertRejectsDuplicateCode(t *testing.T) {
	d := New()
	ctx := context.Background()

	assert.NoError(t, d.Insert(ctx, model.NewRoom("AB2CD3", "creator")))
	assert.ErrorIs(t, d.Insert(ctx, model.NewRoom("AB2CD3", "other")), usecase_room.ErrCodeConflict)
}

func TestUpsertRatingKeepsOneEntryPerConn(t *testing.T) {
	d := New()
	ctx := context.Background()
	assert.NoError(t, d.Insert(ctx, model.NewRoom("AB2CD3", "creator")))

	snap, err := d.UpsertRating(ctx, "AB2CD3", "p1", 4)
	assert.NoError(t, err)
	assert.Equal(t, map[model.ConnID]model.Rating{"p1": 4}, snap)

	snap, err = d.UpsertRating(ctx, "AB2CD3", "p1", 2)
	assert.NoError(t, err)
	assert.Equal(t, map[model.ConnID]model.Rating{"p1": 2}, snap)
}

func TestSnapshotsAreDetached(t *testing.T) {
	d := New()
	ctx := context.Background()
	assert.NoError(t, d.Insert(ctx, model.NewRoom("AB2CD3", "creator")))

	snap, err := d.UpsertRating(ctx, "AB2CD3", "p1", 4)
	assert.NoError(t, err)
	snap["p1"] = 1

	current, err := d.RatingsByCode(ctx, "AB2CD3")
	assert.NoError(t, err)
	assert.Equal(t, model.Rating(4), current["p1"])
}

func TestClearRatings(t *testing.T) {
	d := New()
	ctx := context.Background()
	assert.NoError(t, d.Insert(ctx, model.NewRoom("AB2CD3", "creator")))

	_, err := d.UpsertRating(ctx, "AB2CD3", "p1", 4)
	assert.NoError(t, err)
	_, err = d.UpsertRating(ctx, "AB2CD3", "p2", 5)
	assert.NoError(t, err)

	snap, err := d.ClearRatings(ctx, "AB2CD3")
	assert.NoError(t, err)
	assert.Empty(t, snap)

	// the room itself survives a clear
	creator, err := d.CreatorByCode(ctx, "AB2CD3")
	assert.NoError(t, err)
	assert.Equal(t, model.ConnID("creator"), creator)
}

func TestDeleteRating(t *testing.T) {
	d := New()
	ctx := context.Background()
	assert.NoError(t, d.Insert(ctx, model.NewRoom("AB2CD3", "creator")))

	_, err := d.UpsertRating(ctx, "AB2CD3", "p1", 3)
	assert.NoError(t, err)

	snap, removed, err := d.DeleteRating(ctx, "AB2CD3", "p1")
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, snap)

	_, removed, err = d.DeleteRating(ctx, "AB2CD3", "p1")
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestMissingRoom(t *testing.T) {
	d := New()
	ctx := context.Background()

	_, err := d.CreatorByCode(ctx, "GHOST2")
	assert.ErrorIs(t, err, usecase_room.ErrResourceNotFound)

	_, err = d.RatingsByCode(ctx, "GHOST2")
	assert.ErrorIs(t, err, usecase_room.ErrResourceNotFound)

	assert.ErrorIs(t, d.DeleteByCode(ctx, "GHOST2"), usecase_room.ErrResourceNotFound)

	_, err = d.UpsertRating(ctx, "GHOST2", "p1", 3)
	assert.ErrorIs(t, err, usecase_room.ErrResourceNotFound)

	_, err = d.ClearRatings(ctx, "GHOST2")
	assert.ErrorIs(t, err, usecase_room.ErrResourceNotFound)

	_, _, err = d.DeleteRating(ctx, "GHOST2", "p1")
	assert.ErrorIs(t, err, usecase_room.ErrResourceNotFound)
}

func TestLiveCodes(t *testing.T) {
	d := New()
	ctx := context.Background()

	assert.Empty(t, d.LiveCodes(ctx))

	assert.NoError(t, d.Insert(ctx, model.NewRoom("AAAAAA", "c1")))
	assert.NoError(t, d.Insert(ctx, model.NewRoom("BBBBBB", "c2")))

	assert.ElementsMatch(t, []model.RoomCode{"AAAAAA", "BBBBBB"}, d.LiveCodes(ctx))

	assert.NoError(t, d.DeleteByCode(ctx, "AAAAAA"))
	assert.Equal(t, []model.RoomCode{"BBBBBB"}, d.LiveCodes(ctx))
}
