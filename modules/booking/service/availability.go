package service

import (
	"context"

	"room-booking-api/modules/booking/entity"
	"room-booking-api/modules/booking/repository"

	"github.com/google/uuid"
)

// AvailabilityIndex answers overlap queries against the ledger. It is
// read-only; mutations go through the coordinator.
type AvailabilityIndex struct {
	repo repository.BookingRepositoryInterface
}

func NewAvailabilityIndex(repo repository.BookingRepositoryInterface) *AvailabilityIndex {
	return &AvailabilityIndex{repo: repo}
}

// IsAvailable reports whether no upcoming booking for the room and date
// overlaps the interval. excludeBookingID skips the booking being
// rescheduled so it cannot conflict with itself; pass uuid.Nil
// otherwise.
func (a *AvailabilityIndex) IsAvailable(ctx context.Context, roomID uuid.UUID, interval entity.Interval, excludeBookingID uuid.UUID) (bool, error) {
	bookings, err := a.repo.BookingsForRoomDate(ctx, roomID, interval.Date)
	if err != nil {
		return false, err
	}

	// Rows arrive ordered by start_min; once a candidate starts at or
	// after the requested end nothing later can overlap.
	for i := range bookings {
		b := &bookings[i]
		if b.StartMin >= interval.EndMin {
			break
		}
		if b.Status != entity.StatusUpcoming {
			continue
		}
		if excludeBookingID != uuid.Nil && b.ID == excludeBookingID {
			continue
		}
		if b.Interval().Overlaps(interval) {
			return false, nil
		}
	}
	return true, nil
}
