package repository

import (
	"context"
	"database/sql"
	"errors"

	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/modules/room/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RoomRepository handles room registry database operations
type RoomRepository struct {
	DB database.IDatabase
}

func NewRoomRepository(db database.IDatabase) *RoomRepository {
	return &RoomRepository{DB: db}
}

// RoomRepositoryInterface defines the registry contract
type RoomRepositoryInterface interface {
	Create(ctx context.Context, room *entity.Room) (*entity.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Room, error)
	List(ctx context.Context) ([]entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
}

const roomColumns = `id, name, slug, description, capacity, price, amenities, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	query := `
		INSERT INTO rooms (name, slug, description, capacity, price, amenities)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + roomColumns

	var created entity.Room
	err := r.DB.GetContext(ctx, &created, query,
		room.Name, room.Slug, room.Description, room.Capacity, room.Price, pq.Array(room.Amenities))
	if err != nil {
		logger.Error("RoomRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("RoomRepository:GetByID", err)
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetBySlug(ctx context.Context, slug string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE slug = $1`

	var room entity.Room
	err := r.DB.GetContext(ctx, &room, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("RoomRepository:GetBySlug", err)
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY name ASC`

	var rooms []entity.Room
	err := r.DB.SelectContext(ctx, &rooms, query)
	if err != nil {
		logger.Error("RoomRepository:List", err)
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET name = $2, slug = $3, description = $4, capacity = $5, price = $6,
		    amenities = $7, updated_at = NOW()
		WHERE id = $1`

	err := r.DB.ExecContext(ctx, query,
		room.ID, room.Name, room.Slug, room.Description, room.Capacity, room.Price, pq.Array(room.Amenities))
	if err != nil {
		logger.Error("RoomRepository:Update", err)
		return err
	}
	return nil
}
