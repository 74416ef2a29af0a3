package service

import (
	"context"

	"room-booking-api/core/logger"
	bookingentity "room-booking-api/modules/booking/entity"

	"github.com/hibiken/asynq"
)

// BookingNotifier enqueues booking lifecycle events for asynchronous
// fan-out. Enqueue failures are logged and dropped; notifications are
// best-effort and never fail a booking operation.
type BookingNotifier struct {
	client *asynq.Client
}

func NewBookingNotifier(client *asynq.Client) *BookingNotifier {
	return &BookingNotifier{client: client}
}

func (n *BookingNotifier) BookingEvent(ctx context.Context, event string, b *bookingentity.Booking) {
	recipients := make([]string, 0, len(b.Participants)+1)
	recipients = append(recipients, b.RequesterID.String())
	for _, p := range b.Participants {
		if p != b.RequesterID.String() {
			recipients = append(recipients, p)
		}
	}

	payload := BookingEventPayload{
		Event:       event,
		BookingID:   b.ID.String(),
		BookingCode: b.Code,
		RoomID:      b.RoomID.String(),
		Date:        b.BookingDate.Format("2006-01-02"),
		StartTime:   bookingentity.FormatTimeOfDay(b.StartMin),
		EndTime:     bookingentity.FormatTimeOfDay(b.EndMin),
		Recipients:  recipients,
	}

	task, err := NewBookingEventTask(payload)
	if err != nil {
		logger.Error("BookingNotifier:BookingEvent:BuildTask", "error", err)
		return
	}
	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		logger.Warn("BookingNotifier:BookingEvent:Enqueue", "error", err, "event", event)
	}
}
