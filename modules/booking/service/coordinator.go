package service

import (
	"context"
	"errors"
	"time"

	"room-booking-api/core/config"
	"room-booking-api/core/constants"
	apperrors "room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/core/utils"
	"room-booking-api/modules/booking/dto"
	"room-booking-api/modules/booking/entity"
	"room-booking-api/modules/booking/repository"
	roomservice "room-booking-api/modules/room/service"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// Clock abstracts wall-clock time for the lifecycle checks.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Booking lifecycle events published to the notifier.
const (
	EventBookingCreated     = "booking_created"
	EventBookingRescheduled = "booking_rescheduled"
	EventBookingCancelled   = "booking_cancelled"
)

// Notifier publishes booking lifecycle events. Implementations are
// best-effort and must never block or fail the booking operation.
type Notifier interface {
	BookingEvent(ctx context.Context, event string, b *entity.Booking)
}

// IdempotencyStore is the subset of core/cache used to deduplicate
// retried create requests across replicas. The ledger's unique index is
// the authority; this is the fast path.
type IdempotencyStore interface {
	ClaimIdempotencyKey(ctx context.Context, key, bookingID string) (claimed bool, holder string, err error)
	ReleaseIdempotencyKey(ctx context.Context, key string) error
}

// BookingService is the booking transaction coordinator: it owns the
// per-room critical section in which availability-check-then-mutate
// executes as one indivisible unit. The ledger is mutated exclusively
// through it.
type BookingService struct {
	repo     repository.BookingRepositoryInterface
	rooms    roomservice.RoomServiceInterface
	index    *AvailabilityIndex
	locks    *roomLocks
	idem     IdempotencyStore
	notifier Notifier
	clock    Clock
	schedule config.BookingConfig
}

type BookingServiceInterface interface {
	Create(ctx context.Context, caller *utils.TokenClaims, req *dto.CreateBookingRequest) (*dto.BookingResponse, *apperrors.AppError)
	Reschedule(ctx context.Context, caller *utils.TokenClaims, bookingID uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, *apperrors.AppError)
	Cancel(ctx context.Context, caller *utils.TokenClaims, bookingID uuid.UUID) (*dto.BookingResponse, *apperrors.AppError)
	GetBooking(ctx context.Context, caller *utils.TokenClaims, bookingID uuid.UUID) (*dto.BookingResponse, *apperrors.AppError)
	CheckAvailability(ctx context.Context, req *dto.AvailabilityCheckRequest) (*dto.AvailabilityCheckResponse, *apperrors.AppError)
	ListRoomBookings(ctx context.Context, roomID uuid.UUID, req *dto.ListBookingsRequest) ([]dto.BookingResponse, *apperrors.AppError)
	ListMyBookings(ctx context.Context, caller *utils.TokenClaims, req *dto.ListBookingsRequest) ([]dto.BookingResponse, *apperrors.AppError)
}

func NewBookingService(
	repo repository.BookingRepositoryInterface,
	rooms roomservice.RoomServiceInterface,
	idem IdempotencyStore,
	notifier Notifier,
	schedule config.BookingConfig,
) BookingServiceInterface {
	return newBookingService(repo, rooms, idem, notifier, schedule, realClock{})
}

func newBookingService(
	repo repository.BookingRepositoryInterface,
	rooms roomservice.RoomServiceInterface,
	idem IdempotencyStore,
	notifier Notifier,
	schedule config.BookingConfig,
	clock Clock,
) *BookingService {
	return &BookingService{
		repo:     repo,
		rooms:    rooms,
		index:    NewAvailabilityIndex(repo),
		locks:    newRoomLocks(),
		idem:     idem,
		notifier: notifier,
		clock:    clock,
		schedule: schedule,
	}
}

func (s *BookingService) notify(ctx context.Context, event string, b *entity.Booking) {
	if s.notifier == nil {
		return
	}
	s.notifier.BookingEvent(ctx, event, b)
}

func (s *BookingService) buildInterval(date, start, end string) (entity.Interval, *apperrors.AppError) {
	day, err := entity.ParseDate(date)
	if err != nil {
		return entity.Interval{}, apperrors.NewAppError(apperrors.ErrInvalidInterval, "Invalid booking date", err.Error())
	}
	interval, err := entity.NewInterval(day, start, end,
		s.schedule.SlotMinutes, s.schedule.DayStartHour, s.schedule.DayEndHour)
	if err != nil {
		return entity.Interval{}, apperrors.NewAppError(apperrors.ErrInvalidInterval, "Invalid time range", err.Error())
	}
	return interval, nil
}

// Create books a room for the requested interval. The availability
// check and the insert run under the room's lock so two racing requests
// for the same slot cannot both commit.
func (s *BookingService) Create(ctx context.Context, caller *utils.TokenClaims, req *dto.CreateBookingRequest) (*dto.BookingResponse, *apperrors.AppError) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Invalid room ID", nil)
	}

	interval, appErr := s.buildInterval(req.BookingDate, req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}

	if _, appErr := s.rooms.GetRoom(ctx, roomID); appErr != nil {
		return nil, appErr
	}

	if req.IdempotencyKey != "" {
		if existing, appErr := s.replayIdempotent(ctx, req.IdempotencyKey); appErr != nil {
			return nil, appErr
		} else if existing != nil {
			return existing, nil
		}
	}

	booking := &entity.Booking{
		Code:         utils.GenerateBookingCode(),
		RoomID:       roomID,
		RequesterID:  caller.UserID,
		BookingDate:  interval.Date,
		StartMin:     interval.StartMin,
		EndMin:       interval.EndMin,
		Participants: req.ParticipantIDs,
		Status:       entity.StatusUpcoming,
	}
	if req.IdempotencyKey != "" {
		booking.IdempotencyKey = &req.IdempotencyKey
	}

	unlock := s.locks.Lock(roomID)
	defer unlock()

	available, err := s.index.IsAvailable(ctx, roomID, interval, uuid.Nil)
	if err != nil {
		s.releaseClaim(ctx, req.IdempotencyKey)
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to check availability", err)
	}
	if !available {
		s.releaseClaim(ctx, req.IdempotencyKey)
		return nil, apperrors.NewAppError(apperrors.ErrRoomUnavailable, "Room is not available for the requested time slot", nil)
	}

	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		s.releaseClaim(ctx, req.IdempotencyKey)
		if isUniqueViolation(err) && req.IdempotencyKey != "" {
			// Lost the idempotency race to another replica; the winner's
			// booking is the caller's booking.
			if winner, repErr := s.repo.GetByIdempotencyKey(ctx, req.IdempotencyKey); repErr == nil && winner != nil {
				return dto.ToBookingResponse(winner), nil
			}
		}
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to create booking", err)
	}

	logger.Info("BookingService:Create:Success",
		"booking_id", created.ID, "room_id", roomID, "interval", interval.String(), "requester_id", caller.UserID)
	s.notify(ctx, EventBookingCreated, created)
	return dto.ToBookingResponse(created), nil
}

// replayIdempotent returns the prior booking for a reused idempotency
// key, claiming the key in redis when it is fresh.
func (s *BookingService) replayIdempotent(ctx context.Context, key string) (*dto.BookingResponse, *apperrors.AppError) {
	existing, err := s.repo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to check idempotency key", err)
	}
	if existing != nil {
		logger.Info("BookingService:Create:IdempotentReplay", "booking_id", existing.ID, "key", key)
		return dto.ToBookingResponse(existing), nil
	}

	if s.idem == nil {
		return nil, nil
	}
	claimed, _, err := s.idem.ClaimIdempotencyKey(ctx, key, "")
	if err != nil {
		// Redis being down must not block bookings; the ledger's unique
		// index still guards against duplicates.
		logger.Warn("BookingService:Create:IdempotencyClaim:Error", "error", err, "key", key)
		return nil, nil
	}
	if !claimed {
		if winner, err := s.repo.GetByIdempotencyKey(ctx, key); err == nil && winner != nil {
			return dto.ToBookingResponse(winner), nil
		}
		return nil, apperrors.NewAppError(apperrors.ErrAlreadyExists, "A booking with this idempotency key is already being processed", nil)
	}
	return nil, nil
}

func (s *BookingService) releaseClaim(ctx context.Context, key string) {
	if key == "" || s.idem == nil {
		return
	}
	if err := s.idem.ReleaseIdempotencyKey(ctx, key); err != nil {
		logger.Warn("BookingService:ReleaseIdempotencyKey:Error", "error", err, "key", key)
	}
}

// Reschedule moves a booking to a new interval, re-validated as a fresh
// availability check that excludes the booking itself.
func (s *BookingService) Reschedule(ctx context.Context, caller *utils.TokenClaims, bookingID uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, *apperrors.AppError) {
	booking, appErr := s.loadBooking(ctx, bookingID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorize(caller, booking); appErr != nil {
		return nil, appErr
	}
	booking, appErr = s.normalizeStatus(ctx, booking)
	if appErr != nil {
		return nil, appErr
	}
	if booking.Status.IsTerminal() {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTransition,
			"Cannot reschedule a "+string(booking.Status)+" booking", nil)
	}

	interval, appErr := s.buildInterval(req.BookingDate, req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}

	unlock := s.locks.Lock(booking.RoomID)
	defer unlock()

	available, err := s.index.IsAvailable(ctx, booking.RoomID, interval, booking.ID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to check availability", err)
	}
	if !available {
		return nil, apperrors.NewAppError(apperrors.ErrRoomUnavailable, "Room is not available for the requested time slot", nil)
	}

	updated, err := s.repo.UpdateInterval(ctx, booking.ID, interval)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to reschedule booking", err)
	}

	logger.Info("BookingService:Reschedule:Success",
		"booking_id", booking.ID, "room_id", booking.RoomID, "interval", interval.String())
	s.notify(ctx, EventBookingRescheduled, updated)
	return dto.ToBookingResponse(updated), nil
}

// Cancel is idempotent: cancelling an already-cancelled booking returns
// it unchanged. A completed booking cannot be cancelled. The capability
// check runs before the idempotent short-circuit so a cancelled booking
// is never disclosed to callers who may not view it.
func (s *BookingService) Cancel(ctx context.Context, caller *utils.TokenClaims, bookingID uuid.UUID) (*dto.BookingResponse, *apperrors.AppError) {
	booking, appErr := s.loadBooking(ctx, bookingID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorize(caller, booking); appErr != nil {
		return nil, appErr
	}
	if booking.Status == entity.StatusCancelled {
		return dto.ToBookingResponse(booking), nil
	}
	booking, appErr = s.normalizeStatus(ctx, booking)
	if appErr != nil {
		return nil, appErr
	}
	if booking.Status == entity.StatusCompleted {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTransition, "Cannot cancel a completed booking", nil)
	}

	updated, err := s.repo.UpdateStatus(ctx, booking.ID, entity.StatusCancelled)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to cancel booking", err)
	}

	logger.Info("BookingService:Cancel:Success", "booking_id", booking.ID, "room_id", booking.RoomID)
	s.notify(ctx, EventBookingCancelled, updated)
	return dto.ToBookingResponse(updated), nil
}

func (s *BookingService) GetBooking(ctx context.Context, caller *utils.TokenClaims, bookingID uuid.UUID) (*dto.BookingResponse, *apperrors.AppError) {
	booking, appErr := s.loadBooking(ctx, bookingID)
	if appErr != nil {
		return nil, appErr
	}

	if !s.canView(caller, booking) {
		return nil, apperrors.NewAppError(apperrors.ErrForbidden, "Not authorized to access this booking", nil)
	}

	booking, appErr = s.normalizeStatus(ctx, booking)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToBookingResponse(booking), nil
}

func (s *BookingService) CheckAvailability(ctx context.Context, req *dto.AvailabilityCheckRequest) (*dto.AvailabilityCheckResponse, *apperrors.AppError) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Invalid room ID", nil)
	}

	interval, appErr := s.buildInterval(req.BookingDate, req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}

	if _, appErr := s.rooms.GetRoom(ctx, roomID); appErr != nil {
		return nil, appErr
	}

	available, idxErr := s.index.IsAvailable(ctx, roomID, interval, uuid.Nil)
	if idxErr != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to check availability", idxErr)
	}
	return &dto.AvailabilityCheckResponse{Available: available}, nil
}

func (s *BookingService) ListRoomBookings(ctx context.Context, roomID uuid.UUID, req *dto.ListBookingsRequest) ([]dto.BookingResponse, *apperrors.AppError) {
	if _, appErr := s.rooms.GetRoom(ctx, roomID); appErr != nil {
		return nil, appErr
	}

	from, to, status, appErr := s.listWindow(req)
	if appErr != nil {
		return nil, appErr
	}

	bookings, err := s.repo.ListByRoomRange(ctx, roomID, from, to, status)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to list bookings", err)
	}
	return dto.ToBookingResponses(bookings), nil
}

func (s *BookingService) ListMyBookings(ctx context.Context, caller *utils.TokenClaims, req *dto.ListBookingsRequest) ([]dto.BookingResponse, *apperrors.AppError) {
	from, to, status, appErr := s.listWindow(req)
	if appErr != nil {
		return nil, appErr
	}

	bookings, err := s.repo.ListByRequesterRange(ctx, caller.UserID, from, to, status)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to list bookings", err)
	}
	return dto.ToBookingResponses(bookings), nil
}

// listWindow resolves an optional date range, defaulting to today plus
// three weeks.
func (s *BookingService) listWindow(req *dto.ListBookingsRequest) (time.Time, time.Time, *entity.BookingStatus, *apperrors.AppError) {
	now := s.clock.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(constants.DefaultBookingRange)

	var err error
	if req.StartDate != "" {
		if from, err = entity.ParseDate(req.StartDate); err != nil {
			return time.Time{}, time.Time{}, nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Invalid start date", nil)
		}
		to = from.Add(constants.DefaultBookingRange)
	}
	if req.EndDate != "" {
		if to, err = entity.ParseDate(req.EndDate); err != nil {
			return time.Time{}, time.Time{}, nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Invalid end date", nil)
		}
	}

	var status *entity.BookingStatus
	if req.Status != "" {
		st := entity.BookingStatus(req.Status)
		switch st {
		case entity.StatusUpcoming, entity.StatusCompleted, entity.StatusCancelled:
			status = &st
		default:
			return time.Time{}, time.Time{}, nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Invalid status filter", nil)
		}
	}
	return from, to, status, nil
}

func (s *BookingService) loadBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, *apperrors.AppError) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to get booking", err)
	}
	if booking == nil {
		return nil, apperrors.NewAppError(apperrors.ErrBookingNotFound, "Booking not found", nil)
	}
	return booking, nil
}

// authorize enforces the capability rule shared by reschedule and
// cancel: the original requester or a manager.
func (s *BookingService) authorize(caller *utils.TokenClaims, booking *entity.Booking) *apperrors.AppError {
	if caller.IsManager || caller.UserID == booking.RequesterID {
		return nil
	}
	return apperrors.NewAppError(apperrors.ErrForbidden, "Only the requester or a manager may modify this booking", nil)
}

func (s *BookingService) canView(caller *utils.TokenClaims, booking *entity.Booking) bool {
	if caller.IsManager || caller.UserID == booking.RequesterID {
		return true
	}
	for _, p := range booking.Participants {
		if p == caller.UserID.String() {
			return true
		}
	}
	return false
}

// normalizeStatus lazily applies the time-driven completion on read, so
// a stale upcoming booking never escapes between sweeps.
func (s *BookingService) normalizeStatus(ctx context.Context, booking *entity.Booking) (*entity.Booking, *apperrors.AppError) {
	if booking.Status != entity.StatusUpcoming || !booking.EndsBefore(s.clock.Now().UTC()) {
		return booking, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, booking.ID, entity.StatusCompleted)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to update booking status", err)
	}
	return updated, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
