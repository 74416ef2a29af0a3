package service

import (
	"context"
	"time"

	"room-booking-api/core/logger"
	"room-booking-api/modules/booking/repository"

	"github.com/hibiken/asynq"
)

// TaskSweepCompleted is the periodic task that transitions upcoming
// bookings whose end has passed to completed.
const TaskSweepCompleted = "booking:sweep_completed"

// LifecycleService drives the time-based side of the status machine.
// It is deliberately not a coordinator operation: completion only
// narrows the set of active bookings, so no availability check and no
// room lock is needed.
type LifecycleService struct {
	repo  repository.BookingRepositoryInterface
	clock Clock
}

func NewLifecycleService(repo repository.BookingRepositoryInterface) *LifecycleService {
	return &LifecycleService{repo: repo, clock: realClock{}}
}

// NewSweepTask builds the asynq task registered with the scheduler.
func NewSweepTask() *asynq.Task {
	return asynq.NewTask(TaskSweepCompleted, nil)
}

// HandleSweepTask is the asynq worker handler.
func (s *LifecycleService) HandleSweepTask(ctx context.Context, _ *asynq.Task) error {
	return s.SweepCompleted(ctx)
}

// SweepCompleted completes every expired upcoming booking in one pass.
func (s *LifecycleService) SweepCompleted(ctx context.Context) error {
	started := time.Now()
	affected, err := s.repo.CompleteExpired(ctx, s.clock.Now())
	if err != nil {
		logger.Error("LifecycleService:SweepCompleted", "error", err)
		return err
	}
	if affected > 0 {
		logger.Info("LifecycleService:SweepCompleted",
			"completed", affected, "elapsed", time.Since(started).String())
	}
	return nil
}
