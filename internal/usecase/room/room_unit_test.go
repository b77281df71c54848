package usecase_room

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
	"github.com/am1t0/anonymous-meet-vote/internal/service/roomcode"
	repo_mocks "github.com/am1t0/anonymous-meet-vote/internal/usecase/room/mocks/repository"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

func TestUsecaseRoomUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}

type resources struct {
	usecase  *Usecase
	roomRepo *repo_mocks.RoomRepository
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	roomRepo := repo_mocks.NewRoomRepository(t)
	codes := roomcode.New(roomcode.WithRand(rand.New(rand.NewSource(1))))
	usecase := New(roomRepo, codes)

	return &resources{
		usecase:  usecase,
		roomRepo: roomRepo,
		ctx:      context.Background(),
	}
}

func validCreatorID() model.ConnID {
	return model.ConnID("9f4c1c2e-creator")
}

func (suite *UsecaseRoomUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should create room successfully",
			setupMocks: func(r *resources) {
				r.roomRepo.On("Insert", r.ctx, mock.AnythingOfType("*model.Room")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should retry on code conflict and then succeed",
			setupMocks: func(r *resources) {
				r.roomRepo.On("Insert", r.ctx, mock.AnythingOfType("*model.Room")).
					Return(ErrCodeConflict).Twice()
				r.roomRepo.On("Insert", r.ctx, mock.AnythingOfType("*model.Room")).
					Return(nil).Once()
			},
			expectError: false,
		},
		{
			name: "Should give up after bounded retries",
			setupMocks: func(r *resources) {
				r.roomRepo.On("Insert", r.ctx, mock.AnythingOfType("*model.Room")).
					Return(ErrCodeConflict).Times(10)
			},
			expectError:   true,
			expectedError: ErrRoomsUnavailable,
		},
		{
			name: "Should wrap unexpected repository errors",
			setupMocks: func(r *resources) {
				r.roomRepo.On("Insert", r.ctx, mock.AnythingOfType("*model.Room")).
					Return(errors.New("boom")).Once()
			},
			expectError:   true,
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			code, err := r.usecase.Create(r.ctx, validCreatorID())

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Equal(t, model.EmptyRoomCode, code)
			} else {
				assert.NoError(t, err)
				assert.Len(t, string(code), roomcode.Length)
			}
			r.roomRepo.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestCreateBindsCreator(t provider.T) {
	t.Parallel()
	r := initResources(t)

	var inserted *model.Room
	r.roomRepo.On("Insert", r.ctx, mock.AnythingOfType("*model.Room")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*model.Room)
		}).
		Return(nil).Once()

	code, err := r.usecase.Create(r.ctx, validCreatorID())

	assert.NoError(t, err)
	assert.Equal(t, code, inserted.Code)
	assert.Equal(t, validCreatorID(), inserted.CreatorID)
	assert.Empty(t, inserted.Ratings)
}

func (suite *UsecaseRoomUnitSuite) TestLookup(t provider.T) {
	t.Parallel()

	t.Run("Should normalize raw code before lookup", func(t provider.T) {
		r := initResources(t)
		r.roomRepo.On("CreatorByCode", r.ctx, model.RoomCode("AB2CD3")).
			Return(validCreatorID(), nil).Once()

		code, err := r.usecase.Lookup(r.ctx, "  ab2cd3 ")

		assert.NoError(t, err)
		assert.Equal(t, model.RoomCode("AB2CD3"), code)
	})

	t.Run("Should return not found for dead code", func(t provider.T) {
		r := initResources(t)
		r.roomRepo.On("CreatorByCode", r.ctx, model.RoomCode("AB2CD3")).
			Return(model.EmptyConnID, ErrResourceNotFound).Once()

		code, err := r.usecase.Lookup(r.ctx, "AB2CD3")

		assert.ErrorIs(t, err, ErrResourceNotFound)
		assert.Equal(t, model.EmptyRoomCode, code)
	})
}

func (suite *UsecaseRoomUnitSuite) TestFree(t provider.T) {
	t.Parallel()

	t.Run("Should reject caller that is not the creator", func(t provider.T) {
		r := initResources(t)
		r.roomRepo.On("CreatorByCode", r.ctx, model.RoomCode("AB2CD3")).
			Return(validCreatorID(), nil).Once()

		err := r.usecase.Free(r.ctx, "AB2CD3", "someone-else")

		assert.ErrorIs(t, err, ErrNotCreator)
		r.roomRepo.AssertNotCalled(t, "DeleteByCode", mock.Anything, mock.Anything)
	})

	t.Run("Should delete when caller is the creator", func(t provider.T) {
		r := initResources(t)
		r.roomRepo.On("CreatorByCode", r.ctx, model.RoomCode("AB2CD3")).
			Return(validCreatorID(), nil).Once()
		r.roomRepo.On("DeleteByCode", r.ctx, model.RoomCode("AB2CD3")).
			Return(nil).Once()

		err := r.usecase.Free(r.ctx, "AB2CD3", validCreatorID())

		assert.NoError(t, err)
	})
}

func (suite *UsecaseRoomUnitSuite) TestStats(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.roomRepo.On("RatingsByCode", r.ctx, model.RoomCode("AB2CD3")).
		Return(map[model.ConnID]model.Rating{"p1": 4, "p2": 2}, nil).Once()

	s, err := r.usecase.Stats(r.ctx, "AB2CD3")

	assert.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 3.0, s.Avg)
	assert.Equal(t, [5]int{0, 1, 0, 1, 0}, s.Distribution)
}
