package service

import (
	"context"
	"encoding/json"
	"fmt"

	"room-booking-api/core/errors"
	"room-booking-api/core/logger"
	"room-booking-api/modules/notification/dto"
	"room-booking-api/modules/notification/entity"
	"room-booking-api/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskBookingEvent carries a booking lifecycle event to the worker,
// which fans it out into one notification row per recipient.
const TaskBookingEvent = "notification:booking_event"

type BookingEventPayload struct {
	Event       string   `json:"event"`
	BookingID   string   `json:"booking_id"`
	BookingCode string   `json:"booking_code"`
	RoomID      string   `json:"room_id"`
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Recipients  []string `json:"recipients"`
}

func NewBookingEventTask(payload BookingEventPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBookingEvent, data), nil
}

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

type NotificationServiceInterface interface {
	ListMy(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.NotificationListResponse, *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError)
	HandleBookingEventTask(ctx context.Context, t *asynq.Task) error
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) NotificationServiceInterface {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListMy(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.NotificationListResponse, *errors.AppError) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list notifications", nil)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.ToNotificationResponse(&notifications[i]))
	}
	return &dto.NotificationListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "Invalid notification ID", id)
		}
	}
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications as read", nil)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications as read", nil)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "Failed to count unread notifications", nil)
	}
	return count, nil
}

// HandleBookingEventTask is the asynq worker handler. Unknown
// recipients are skipped rather than failing the whole task.
func (s *NotificationService) HandleBookingEventTask(ctx context.Context, t *asynq.Task) error {
	var payload BookingEventPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("NotificationService:HandleBookingEventTask:Unmarshal", "error", err)
		return fmt.Errorf("unmarshal booking event: %w", err)
	}

	title, message := composeBookingMessage(&payload)
	for _, recipient := range payload.Recipients {
		userID, err := uuid.Parse(recipient)
		if err != nil {
			logger.Warn("NotificationService:HandleBookingEventTask:BadRecipient", "recipient", recipient)
			continue
		}
		notification := &entity.Notification{
			ID:      uuid.New(),
			UserID:  userID,
			Title:   title,
			Message: message,
			Type:    payload.Event,
			Data: entity.JSONB{
				"booking_id":   payload.BookingID,
				"booking_code": payload.BookingCode,
				"room_id":      payload.RoomID,
				"date":         payload.Date,
			},
			IsRead: false,
		}
		if err := s.repo.Create(ctx, notification); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
	}

	logger.Info("NotificationService:HandleBookingEventTask:Done",
		"event", payload.Event,
		"booking_code", payload.BookingCode,
		"recipients", len(payload.Recipients),
	)
	return nil
}

func composeBookingMessage(p *BookingEventPayload) (string, string) {
	slot := fmt.Sprintf("%s %s-%s", p.Date, p.StartTime, p.EndTime)
	switch p.Event {
	case entity.TypeBookingCreated:
		return "Booking confirmed", fmt.Sprintf("Booking %s is confirmed for %s", p.BookingCode, slot)
	case entity.TypeBookingRescheduled:
		return "Booking rescheduled", fmt.Sprintf("Booking %s was moved to %s", p.BookingCode, slot)
	case entity.TypeBookingCancelled:
		return "Booking cancelled", fmt.Sprintf("Booking %s for %s was cancelled", p.BookingCode, slot)
	default:
		return "Booking update", fmt.Sprintf("Booking %s was updated", p.BookingCode)
	}
}
