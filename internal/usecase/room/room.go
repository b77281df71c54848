package usecase_room

import (
	"context"
	"errors"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
	"github.com/am1t0/anonymous-meet-vote/internal/service/roomcode"
	"github.com/am1t0/anonymous-meet-vote/internal/service/stats"
)

var (
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available room codes")
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
	ErrNotCreator       = errors.New("caller is not the room creator")
)

// codeRetries bounds collision retries on create. The code space is
// ~2^30, so exhausting the cap means the randomness source is broken,
// not that the table is full.
const codeRetries = 10

//go:generate mockery --name=RoomRepository --output=./mocks/repository --filename=repository.go
type RoomRepository interface {
	Insert(ctx context.Context, room *model.Room) error
	CreatorByCode(ctx context.Context, code model.RoomCode) (model.ConnID, error)
	DeleteByCode(ctx context.Context, code model.RoomCode) error
	RatingsByCode(ctx context.Context, code model.RoomCode) (map[model.ConnID]model.Rating, error)
	LiveCodes(ctx context.Context) []model.RoomCode
}

type Usecase struct {
	RoomRepository RoomRepository
	Codes          *roomcode.Generator
}

func New(
	RoomRepository RoomRepository,
	Codes *roomcode.Generator,
) *Usecase {
	return &Usecase{
		RoomRepository: RoomRepository,
		Codes:          Codes,
	}
}

// Create allocates a fresh unique code and registers the caller as the
// room's creator. Codes can conflict with live rooms; retrying is
// bounded.
func (u *Usecase) Create(ctx context.Context, creator model.ConnID) (model.RoomCode, error) {
	for retries := codeRetries; retries > 0; retries-- {
		code := model.RoomCode(u.Codes.Generate())
		if err := u.RoomRepository.Insert(ctx, model.NewRoom(code, creator)); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				continue
			}
			return model.EmptyRoomCode, errors.Join(ErrInternal, err)
		}
		return code, nil
	}
	return model.EmptyRoomCode, ErrRoomsUnavailable
}

// Lookup normalizes a client-supplied code and resolves it against the
// live room table.
func (u *Usecase) Lookup(ctx context.Context, raw string) (model.RoomCode, error) {
	code := model.RoomCode(roomcode.Normalize(raw))
	if _, err := u.RoomRepository.CreatorByCode(ctx, code); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.EmptyRoomCode, ErrResourceNotFound
		}
		return model.EmptyRoomCode, errors.Join(ErrInternal, err)
	}
	return code, nil
}

func (u *Usecase) IsCreator(ctx context.Context, code model.RoomCode, caller model.ConnID) (bool, error) {
	creator, err := u.RoomRepository.CreatorByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return false, ErrResourceNotFound
		}
		return false, errors.Join(ErrInternal, err)
	}
	return creator == caller, nil
}

// Free destroys a room. Creator-only: the caller's connection identity
// is the capability.
func (u *Usecase) Free(ctx context.Context, code model.RoomCode, caller model.ConnID) error {
	isCreator, err := u.IsCreator(ctx, code, caller)
	if err != nil {
		return err
	}
	if !isCreator {
		return ErrNotCreator
	}
	return u.ForceFree(ctx, code)
}

// ForceFree destroys a room without the creator check. The disconnect
// path uses it when the creator's connection is already gone.
func (u *Usecase) ForceFree(ctx context.Context, code model.RoomCode) error {
	if err := u.RoomRepository.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Stats aggregates the room's current ratings.
func (u *Usecase) Stats(ctx context.Context, code model.RoomCode) (model.Stats, error) {
	ratings, err := u.RoomRepository.RatingsByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Stats{}, ErrResourceNotFound
		}
		return model.Stats{}, errors.Join(ErrInternal, err)
	}
	return stats.Aggregate(ratings), nil
}

// LiveCodes lists every live room for the gateway's disconnect sweep.
func (u *Usecase) LiveCodes(ctx context.Context) []model.RoomCode {
	return u.RoomRepository.LiveCodes(ctx)
}
