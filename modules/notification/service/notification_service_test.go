package service

import (
	"context"
	"testing"

	"room-booking-api/core/errors"
	"room-booking-api/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	stored []entity.Notification
	read   map[uuid.UUID][]string
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{read: make(map[uuid.UUID][]string)}
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	f.stored = append(f.stored, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, int, error) {
	var mine []entity.Notification
	for _, n := range f.stored {
		if n.UserID == userID {
			mine = append(mine, n)
		}
	}
	total := len(mine)
	if offset > len(mine) {
		return nil, total, nil
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, total, nil
}

func (f *fakeNotificationRepo) MarkAsRead(_ context.Context, userID uuid.UUID, ids []string) error {
	f.read[userID] = append(f.read[userID], ids...)
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(_ context.Context, userID uuid.UUID) error {
	for i := range f.stored {
		if f.stored[i].UserID == userID {
			f.stored[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for _, n := range f.stored {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func TestHandleBookingEventTaskFanOut(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	requester := uuid.New()
	participant := uuid.New()
	task, err := NewBookingEventTask(BookingEventPayload{
		Event:       entity.TypeBookingCreated,
		BookingID:   uuid.New().String(),
		BookingCode: "BK-x1y2z3a",
		RoomID:      uuid.New().String(),
		Date:        "2026-03-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
		Recipients:  []string{requester.String(), participant.String(), "not-a-uuid"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.HandleBookingEventTask(context.Background(), task))

	// One row per valid recipient; the malformed one is skipped.
	require.Len(t, repo.stored, 2)
	assert.Equal(t, requester, repo.stored[0].UserID)
	assert.Equal(t, participant, repo.stored[1].UserID)
	for _, n := range repo.stored {
		assert.Equal(t, entity.TypeBookingCreated, n.Type)
		assert.Equal(t, "Booking confirmed", n.Title)
		assert.Contains(t, n.Message, "BK-x1y2z3a")
		assert.Contains(t, n.Message, "2026-03-10 09:00-10:00")
		assert.False(t, n.IsRead)
	}
}

func TestComposeBookingMessage(t *testing.T) {
	payload := &BookingEventPayload{
		BookingCode: "BK-abc1234",
		Date:        "2026-03-10",
		StartTime:   "14:00",
		EndTime:     "15:00",
	}

	payload.Event = entity.TypeBookingCancelled
	title, message := composeBookingMessage(payload)
	assert.Equal(t, "Booking cancelled", title)
	assert.Contains(t, message, "was cancelled")

	payload.Event = entity.TypeBookingRescheduled
	title, message = composeBookingMessage(payload)
	assert.Equal(t, "Booking rescheduled", title)
	assert.Contains(t, message, "was moved to 2026-03-10 14:00-15:00")
}

func TestListMyDefaultsLimit(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)
	userID := uuid.New()

	for i := 0; i < 30; i++ {
		require.NoError(t, repo.Create(context.Background(), &entity.Notification{
			ID:     uuid.New(),
			UserID: userID,
			Title:  "t",
			Type:   entity.TypeBookingCreated,
		}))
	}

	result, appErr := svc.ListMy(context.Background(), userID, 0, -5)
	require.Nil(t, appErr)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 0, result.Offset)
	assert.Len(t, result.Items, 20)
	assert.Equal(t, 30, result.Total)
}

func TestMarkAsReadRejectsBadIDs(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo())

	appErr := svc.MarkAsRead(context.Background(), uuid.New(), []string{"nope"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
