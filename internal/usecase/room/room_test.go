package usecase_room_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	infra_memory_room "github.com/am1t0/anonymous-meet-vote/internal/infra/memory/room"
	"github.com/am1t0/anonymous-meet-vote/internal/model"
	"github.com/am1t0/anonymous-meet-vote/internal/service/roomcode"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

type UsecaseRoomSuite struct {
	suite.Suite
}

func TestUsecaseRoomSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomSuite))
}

func newUsecase() *usecase_room.Usecase {
	return usecase_room.New(infra_memory_room.New(), roomcode.New())
}

func (suite *UsecaseRoomSuite) TestLifecycle(t provider.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()
	creator := model.ConnID("creator-1")

	code, err := uc.Create(ctx, creator)
	assert.NoError(t, err)
	assert.Len(t, string(code), roomcode.Length)

	found, err := uc.Lookup(ctx, string(code))
	assert.NoError(t, err)
	assert.Equal(t, code, found)

	isCreator, err := uc.IsCreator(ctx, code, creator)
	assert.NoError(t, err)
	assert.True(t, isCreator)

	assert.NoError(t, uc.Free(ctx, code, creator))

	_, err = uc.Lookup(ctx, string(code))
	assert.ErrorIs(t, err, usecase_room.ErrResourceNotFound)

	// destroying twice reports not found, never a fault
	assert.ErrorIs(t, uc.ForceFree(ctx, code), usecase_room.ErrResourceNotFound)
}

func (suite *UsecaseRoomSuite) TestCodesAreUnique(t provider.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()

	seen := make(map[model.RoomCode]bool)
	for range 50 {
		code, err := uc.Create(ctx, "creator-1")
		assert.NoError(t, err)
		assert.False(t, seen[code], "code %s issued twice", code)
		seen[code] = true
	}

	assert.Len(t, uc.LiveCodes(ctx), 50)
}

func (suite *UsecaseRoomSuite) TestLookupIsCaseInsensitive(t provider.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()

	code, err := uc.Create(ctx, "creator-1")
	assert.NoError(t, err)

	found, err := uc.Lookup(ctx, "  "+strings.ToLower(string(code))+"  ")
	assert.NoError(t, err)
	assert.Equal(t, code, found)
}
