package service

import (
	"context"
	"testing"
	"time"

	"room-booking-api/modules/booking/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepCompleted(t *testing.T) {
	ledger := newFakeLedger()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	roomID := uuid.New()

	past := seedBooking(t, ledger, roomID, day, 540, 600, entity.StatusUpcoming)      // ended
	boundary := seedBooking(t, ledger, roomID, day, 600, 720, entity.StatusUpcoming)  // ends exactly now
	future := seedBooking(t, ledger, roomID, day, 780, 840, entity.StatusUpcoming)    // still ahead
	cancelled := seedBooking(t, ledger, roomID, day, 480, 540, entity.StatusCancelled)

	svc := &LifecycleService{
		repo:  ledger,
		clock: &fakeClock{now: day.Add(12 * time.Hour)}, // 12:00
	}
	require.NoError(t, svc.SweepCompleted(context.Background()))

	status := func(id uuid.UUID) entity.BookingStatus {
		b, err := ledger.GetByID(context.Background(), id)
		require.NoError(t, err)
		return b.Status
	}

	assert.Equal(t, entity.StatusCompleted, status(past.ID))
	assert.Equal(t, entity.StatusCompleted, status(boundary.ID), "end boundary counts as over")
	assert.Equal(t, entity.StatusUpcoming, status(future.ID))
	assert.Equal(t, entity.StatusCancelled, status(cancelled.ID), "cancelled is never rewritten")
}

func TestHandleSweepTask(t *testing.T) {
	svc := &LifecycleService{repo: newFakeLedger(), clock: realClock{}}
	assert.NoError(t, svc.HandleSweepTask(context.Background(), NewSweepTask()))
}
