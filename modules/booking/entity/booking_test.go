package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusUpcoming.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusUpcoming.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusUpcoming))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusUpcoming))
	assert.False(t, StatusUpcoming.CanTransitionTo(StatusUpcoming))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusUpcoming.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBookingEndsBefore(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	b := &Booking{BookingDate: day, StartMin: 540, EndMin: 600} // 09:00-10:00

	assert.False(t, b.EndsBefore(day.Add(9*time.Hour+30*time.Minute)))
	// End boundary counts as over: the slot is half-open.
	assert.True(t, b.EndsBefore(day.Add(10*time.Hour)))
	assert.True(t, b.EndsBefore(day.Add(11*time.Hour)))
	assert.True(t, b.EndsBefore(day.Add(48*time.Hour)))
}
