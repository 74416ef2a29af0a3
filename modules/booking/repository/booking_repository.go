package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/modules/booking/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BookingRepository is the reservation ledger. It performs no conflict
// checking; all conflict logic lives in the availability index and the
// coordinator.
type BookingRepository struct {
	DB database.IDatabase
}

func NewBookingRepository(db database.IDatabase) *BookingRepository {
	return &BookingRepository{DB: db}
}

// BookingRepositoryInterface defines the ledger contract
type BookingRepositoryInterface interface {
	Insert(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Booking, error)
	BookingsForRoomDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]entity.Booking, error)
	ListByRoomRange(ctx context.Context, roomID uuid.UUID, from, to time.Time, status *entity.BookingStatus) ([]entity.Booking, error)
	ListByRequesterRange(ctx context.Context, requesterID uuid.UUID, from, to time.Time, status *entity.BookingStatus) ([]entity.Booking, error)
	UpdateInterval(ctx context.Context, id uuid.UUID, interval entity.Interval) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (*entity.Booking, error)
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}

const bookingColumns = `id, code, room_id, requester_id, booking_date, start_min, end_min,
	participants, status, idempotency_key, created_at, updated_at`

// statusArg converts an optional status filter into a driver-friendly
// nullable text argument.
func statusArg(status *entity.BookingStatus) any {
	if status == nil {
		return nil
	}
	return string(*status)
}

func (r *BookingRepository) Insert(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	query := `
		INSERT INTO bookings (code, room_id, requester_id, booking_date, start_min, end_min,
		                      participants, status, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns

	var created entity.Booking
	err := r.DB.GetContext(ctx, &created, query,
		booking.Code, booking.RoomID, booking.RequesterID, booking.BookingDate,
		booking.StartMin, booking.EndMin, pq.Array(booking.Participants),
		booking.Status, booking.IdempotencyKey)
	if err != nil {
		logger.Error("BookingRepository:Insert", err)
		return nil, err
	}
	return &created, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.DB.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByID", err)
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE idempotency_key = $1`

	var booking entity.Booking
	err := r.DB.GetContext(ctx, &booking, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("BookingRepository:GetByIdempotencyKey", err)
		return nil, err
	}
	return &booking, nil
}

// BookingsForRoomDate returns all bookings for a room and date ordered
// by start time, the shape the availability scan expects.
func (r *BookingRepository) BookingsForRoomDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2
		ORDER BY start_min ASC`

	var bookings []entity.Booking
	err := r.DB.SelectContext(ctx, &bookings, query, roomID, date)
	if err != nil {
		logger.Error("BookingRepository:BookingsForRoomDate", err)
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListByRoomRange(ctx context.Context, roomID uuid.UUID, from, to time.Time, status *entity.BookingStatus) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND booking_date >= $2 AND booking_date <= $3
		  AND ($4::text IS NULL OR status = $4)
		ORDER BY booking_date ASC, start_min ASC`

	var bookings []entity.Booking
	err := r.DB.SelectContext(ctx, &bookings, query, roomID, from, to, statusArg(status))
	if err != nil {
		logger.Error("BookingRepository:ListByRoomRange", err)
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListByRequesterRange(ctx context.Context, requesterID uuid.UUID, from, to time.Time, status *entity.BookingStatus) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE (requester_id = $1 OR $2 = ANY(participants))
		  AND booking_date >= $3 AND booking_date <= $4
		  AND ($5::text IS NULL OR status = $5)
		ORDER BY booking_date ASC, start_min ASC`

	var bookings []entity.Booking
	err := r.DB.SelectContext(ctx, &bookings, query, requesterID, requesterID.String(), from, to, statusArg(status))
	if err != nil {
		logger.Error("BookingRepository:ListByRequesterRange", err)
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateInterval(ctx context.Context, id uuid.UUID, interval entity.Interval) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET booking_date = $2, start_min = $3, end_min = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	var updated entity.Booking
	err := r.DB.GetContext(ctx, &updated, query, id, interval.Date, interval.StartMin, interval.EndMin)
	if err != nil {
		logger.Error("BookingRepository:UpdateInterval", err)
		return nil, err
	}
	return &updated, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	var updated entity.Booking
	err := r.DB.GetContext(ctx, &updated, query, id, status)
	if err != nil {
		logger.Error("BookingRepository:UpdateStatus", err)
		return nil, err
	}
	return &updated, nil
}

// CompleteExpired transitions every upcoming booking whose end has
// passed to completed. Used by the periodic sweep; needs no
// availability check since it only narrows the active set.
func (r *BookingRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	nowUTC := now.UTC()
	midnight := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	minuteOfDay := nowUTC.Hour()*60 + nowUTC.Minute()

	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND (booking_date < $3 OR (booking_date = $3 AND end_min <= $4))`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		entity.StatusCompleted, entity.StatusUpcoming, midnight, minuteOfDay)
	if err != nil {
		logger.Error("BookingRepository:CompleteExpired", err)
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return affected, nil
}
