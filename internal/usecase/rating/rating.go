package usecase_rating

import (
	"context"
	"errors"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
	"github.com/am1t0/anonymous-meet-vote/internal/service/stats"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

var ErrInvalidRating = errors.New("rating outside allowed range")

// RatingRepository mutates a room's rating table. Every mutation returns
// the post-mutation ratings snapshot taken under the repository lock, so
// the stats broadcast for that mutation is computed exactly once from a
// consistent view.
//
//go:generate mockery --name=RatingRepository --output=./mocks/repository --filename=repository.go
type RatingRepository interface {
	UpsertRating(ctx context.Context, code model.RoomCode, caller model.ConnID, value model.Rating) (map[model.ConnID]model.Rating, error)
	ClearRatings(ctx context.Context, code model.RoomCode) (map[model.ConnID]model.Rating, error)
	DeleteRating(ctx context.Context, code model.RoomCode, caller model.ConnID) (map[model.ConnID]model.Rating, bool, error)
}

type Usecase struct {
	RatingRepository RatingRepository
	Rooms            *usecase_room.Usecase
}

func New(
	RatingRepository RatingRepository,
	Rooms *usecase_room.Usecase,
) *Usecase {
	return &Usecase{
		RatingRepository: RatingRepository,
		Rooms:            Rooms,
	}
}

// Submit upserts the caller's rating. One entry per connection identity,
// no matter how many times it resubmits.
func (u *Usecase) Submit(ctx context.Context, code model.RoomCode, caller model.ConnID, value model.Rating) (model.Stats, error) {
	if value < model.MinRating || value > model.MaxRating {
		return model.Stats{}, ErrInvalidRating
	}

	ratings, err := u.RatingRepository.UpsertRating(ctx, code, caller, value)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			return model.Stats{}, usecase_room.ErrResourceNotFound
		}
		return model.Stats{}, errors.Join(usecase_room.ErrInternal, err)
	}
	return stats.Aggregate(ratings), nil
}

// Clear wipes every rating entry, membership untouched. Creator-only.
func (u *Usecase) Clear(ctx context.Context, code model.RoomCode, caller model.ConnID) (model.Stats, error) {
	isCreator, err := u.Rooms.IsCreator(ctx, code, caller)
	if err != nil {
		return model.Stats{}, err
	}
	if !isCreator {
		return model.Stats{}, usecase_room.ErrNotCreator
	}

	ratings, err := u.RatingRepository.ClearRatings(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			return model.Stats{}, usecase_room.ErrResourceNotFound
		}
		return model.Stats{}, errors.Join(usecase_room.ErrInternal, err)
	}
	return stats.Aggregate(ratings), nil
}

// Drop removes the caller's entry if it has one, reporting whether
// anything changed. Disconnect cleanup path; never creator-checked.
func (u *Usecase) Drop(ctx context.Context, code model.RoomCode, caller model.ConnID) (model.Stats, bool, error) {
	ratings, removed, err := u.RatingRepository.DeleteRating(ctx, code, caller)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			return model.Stats{}, false, usecase_room.ErrResourceNotFound
		}
		return model.Stats{}, false, errors.Join(usecase_room.ErrInternal, err)
	}
	return stats.Aggregate(ratings), removed, nil
}
