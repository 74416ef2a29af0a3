package service

import (
	"context"

	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/entity"
	"room-booking-api/modules/room/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// RoomService is the read-mostly room registry. The booking engine
// depends on it but never mutates it.
type RoomService struct {
	repo repository.RoomRepositoryInterface
}

type RoomServiceInterface interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*entity.Room, *errors.AppError)
	GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, *errors.AppError)
	GetRoomBySlug(ctx context.Context, s string) (*entity.Room, *errors.AppError)
	ListRooms(ctx context.Context) ([]entity.Room, *errors.AppError)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*entity.Room, *errors.AppError)
}

func NewRoomService(repo repository.RoomRepositoryInterface) RoomServiceInterface {
	return &RoomService{repo: repo}
}

func (s *RoomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*entity.Room, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Room name is required", nil)
	}
	if req.Capacity <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Room capacity must be positive", nil)
	}
	if req.Price < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Room price must not be negative", nil)
	}

	room := &entity.Room{
		Name:      req.Name,
		Slug:      slug.Make(req.Name),
		Capacity:  req.Capacity,
		Price:     req.Price,
		Amenities: req.Amenities,
	}
	if req.Description != "" {
		room.Description = &req.Description
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		logger.Error("RoomService:CreateRoom", "error", err, "name", req.Name)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create room", err)
	}
	return created, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, *errors.AppError) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrRoomNotFound, "Room not found", nil)
	}
	return room, nil
}

func (s *RoomService) GetRoomBySlug(ctx context.Context, sl string) (*entity.Room, *errors.AppError) {
	room, err := s.repo.GetBySlug(ctx, sl)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get room", err)
	}
	if room == nil {
		return nil, errors.NewAppError(errors.ErrRoomNotFound, "Room not found", nil)
	}
	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context) ([]entity.Room, *errors.AppError) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list rooms", err)
	}
	return rooms, nil
}

// UpdateRoom applies an administrative partial update. Renaming a room
// regenerates its slug.
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*entity.Room, *errors.AppError) {
	room, appErr := s.GetRoom(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Room name must not be empty", nil)
		}
		room.Name = *req.Name
		room.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Room capacity must be positive", nil)
		}
		room.Capacity = *req.Capacity
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Room price must not be negative", nil)
		}
		room.Price = *req.Price
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}

	if err := s.repo.Update(ctx, room); err != nil {
		logger.Error("RoomService:UpdateRoom", "error", err, "room_id", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update room", err)
	}
	return room, nil
}
