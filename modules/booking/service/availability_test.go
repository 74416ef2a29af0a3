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

func seedBooking(t *testing.T, ledger *fakeLedger, roomID uuid.UUID, date time.Time, startMin, endMin int, status entity.BookingStatus) *entity.Booking {
	t.Helper()
	created, err := ledger.Insert(context.Background(), &entity.Booking{
		Code:        "BK-test",
		RoomID:      roomID,
		RequesterID: uuid.New(),
		BookingDate: date,
		StartMin:    startMin,
		EndMin:      endMin,
		Status:      status,
	})
	require.NoError(t, err)
	return created
}

func TestAvailabilityIndex(t *testing.T) {
	ledger := newFakeLedger()
	index := NewAvailabilityIndex(ledger)
	roomID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	seedBooking(t, ledger, roomID, day, 540, 600, entity.StatusUpcoming)   // 09:00-10:00
	seedBooking(t, ledger, roomID, day, 720, 780, entity.StatusCancelled)  // 12:00-13:00, inert
	seedBooking(t, ledger, roomID, day, 840, 900, entity.StatusCompleted)  // 14:00-15:00, inert

	check := func(startMin, endMin int) bool {
		ok, err := index.IsAvailable(context.Background(), roomID,
			entity.Interval{Date: day, StartMin: startMin, EndMin: endMin}, uuid.Nil)
		require.NoError(t, err)
		return ok
	}

	assert.False(t, check(540, 600), "exact overlap")
	assert.False(t, check(570, 630), "partial overlap")
	assert.False(t, check(510, 630), "containing")
	assert.True(t, check(600, 660), "touching after")
	assert.True(t, check(480, 540), "touching before")
	assert.True(t, check(720, 780), "cancelled bookings do not block")
	assert.True(t, check(840, 900), "completed bookings do not block")

	otherRoom := uuid.New()
	ok, err := index.IsAvailable(context.Background(), otherRoom,
		entity.Interval{Date: day, StartMin: 540, EndMin: 600}, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, ok, "other rooms are independent")
}

func TestAvailabilityIndexExcludesBooking(t *testing.T) {
	ledger := newFakeLedger()
	index := NewAvailabilityIndex(ledger)
	roomID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	own := seedBooking(t, ledger, roomID, day, 540, 660, entity.StatusUpcoming)

	target := entity.Interval{Date: day, StartMin: 600, EndMin: 720}

	ok, err := index.IsAvailable(context.Background(), roomID, target, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = index.IsAvailable(context.Background(), roomID, target, own.ID)
	require.NoError(t, err)
	assert.True(t, ok, "a booking never conflicts with itself")
}
