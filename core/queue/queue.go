package queue

import (
	"context"
	"fmt"

	"room-booking-api/core/config"
	"room-booking-api/core/logger"

	"github.com/hibiken/asynq"
)

// Queue wraps the asynq client, worker and periodic scheduler sharing
// one redis connection config. Modules register task handlers and
// periodic entries before Start.
type Queue struct {
	client    *asynq.Client
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewQueue(cfg config.RedisConfig) *Queue {
	opt := asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	return &Queue{
		client: asynq.NewClient(opt),
		server: asynq.NewServer(opt, asynq.Config{
			Concurrency: 5,
		}),
		scheduler: asynq.NewScheduler(opt, nil),
		mux:       asynq.NewServeMux(),
	}
}

func (q *Queue) Client() *asynq.Client {
	return q.client
}

// HandleFunc registers a worker handler for the given task type.
func (q *Queue) HandleFunc(taskType string, handler func(ctx context.Context, t *asynq.Task) error) {
	q.mux.HandleFunc(taskType, handler)
}

// RegisterPeriodic schedules a task on a cron-style spec, e.g.
// "@every 5m".
func (q *Queue) RegisterPeriodic(spec string, task *asynq.Task) error {
	entryID, err := q.scheduler.Register(spec, task)
	if err != nil {
		return err
	}
	logger.Info("Queue:RegisterPeriodic", "entry_id", entryID, "spec", spec, "task", task.Type())
	return nil
}

// Start runs the worker and scheduler in background goroutines.
func (q *Queue) Start() error {
	if err := q.server.Start(q.mux); err != nil {
		return fmt.Errorf("failed to start queue worker: %w", err)
	}
	if err := q.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start queue scheduler: %w", err)
	}
	return nil
}

func (q *Queue) Shutdown() {
	q.scheduler.Shutdown()
	q.server.Shutdown()
	if err := q.client.Close(); err != nil {
		logger.Warn("Queue:Shutdown:ClientClose", "error", err)
	}
}
