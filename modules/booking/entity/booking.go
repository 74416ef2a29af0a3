package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo encodes the state machine: upcoming may move to
// completed (time passes end) or cancelled (cancel); nothing else.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	return s == StatusUpcoming && (to == StatusCompleted || to == StatusCancelled)
}

// Booking is one ledger record. History is never deleted; terminal
// bookings are excluded from overlap checks but retained.
type Booking struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Code           string         `db:"code" json:"code"`
	RoomID         uuid.UUID      `db:"room_id" json:"room_id"`
	RequesterID    uuid.UUID      `db:"requester_id" json:"requester_id"`
	BookingDate    time.Time      `db:"booking_date" json:"booking_date"`
	StartMin       int            `db:"start_min" json:"-"`
	EndMin         int            `db:"end_min" json:"-"`
	Participants   pq.StringArray `db:"participants" json:"participants"`
	Status         BookingStatus  `db:"status" json:"status"`
	IdempotencyKey *string        `db:"idempotency_key" json:"-"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// Interval returns the booked time range.
func (b *Booking) Interval() Interval {
	return Interval{Date: b.BookingDate.UTC().Truncate(24 * time.Hour), StartMin: b.StartMin, EndMin: b.EndMin}
}

// EndsBefore reports whether the booked slot is entirely in the past.
func (b *Booking) EndsBefore(now time.Time) bool {
	return b.Interval().End().Before(now) || b.Interval().End().Equal(now)
}
