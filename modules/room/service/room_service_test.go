package service

import (
	"context"
	"testing"

	"room-booking-api/core/errors"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) (*entity.Room, error) {
	stored := *room
	stored.ID = uuid.New()
	f.rooms[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	if room, ok := f.rooms[id]; ok {
		copied := *room
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeRoomRepo) GetBySlug(_ context.Context, s string) (*entity.Room, error) {
	for _, room := range f.rooms {
		if room.Slug == s {
			copied := *room
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) List(_ context.Context) ([]entity.Room, error) {
	out := make([]entity.Room, 0, len(f.rooms))
	for _, room := range f.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	stored := *room
	f.rooms[room.ID] = &stored
	return nil
}

func TestCreateRoom(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo())

	created, appErr := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		Name:      "Board Room A",
		Capacity:  12,
		Price:     45.50,
		Amenities: []string{"projector", "whiteboard"},
	})
	require.Nil(t, appErr)
	assert.Equal(t, "board-room-a", created.Slug)
	assert.Equal(t, 12, created.Capacity)
	assert.Nil(t, created.Description)
}

func TestCreateRoomValidation(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo())

	tests := []dto.CreateRoomRequest{
		{Name: "", Capacity: 4},
		{Name: "No Seats", Capacity: 0},
		{Name: "Negative", Capacity: 4, Price: -1},
	}
	for _, req := range tests {
		_, appErr := svc.CreateRoom(context.Background(), &req)
		require.NotNil(t, appErr, "request %+v", req)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo())

	_, appErr := svc.GetRoom(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrRoomNotFound, appErr.Code)

	_, appErr = svc.GetRoomBySlug(context.Background(), "no-such-room")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrRoomNotFound, appErr.Code)
}

func TestUpdateRoomPartial(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewRoomService(repo)

	created, appErr := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		Name: "Focus Room", Capacity: 4, Price: 10,
	})
	require.Nil(t, appErr)

	newCap := 6
	updated, appErr := svc.UpdateRoom(context.Background(), created.ID, &dto.UpdateRoomRequest{Capacity: &newCap})
	require.Nil(t, appErr)
	assert.Equal(t, 6, updated.Capacity)
	assert.Equal(t, "Focus Room", updated.Name, "unset fields stay unchanged")
	assert.Equal(t, "focus-room", updated.Slug)

	newName := "Quiet Room"
	updated, appErr = svc.UpdateRoom(context.Background(), created.ID, &dto.UpdateRoomRequest{Name: &newName})
	require.Nil(t, appErr)
	assert.Equal(t, "quiet-room", updated.Slug, "rename regenerates the slug")

	badCap := 0
	_, appErr = svc.UpdateRoom(context.Background(), created.ID, &dto.UpdateRoomRequest{Capacity: &badCap})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
