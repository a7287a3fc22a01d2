package jobs

import (
	"context"
	"log/slog"

	"dockyard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueSweepJob flags trucks that missed their booked arrival. Runs every
// minute; a flagged truck becomes reschedulable by any role.
type OverdueSweepJob struct {
	handler commands.SweepOverdueTrucksCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueSweepJob creates the overdue sweep job.
func NewOverdueSweepJob(handler commands.SweepOverdueTrucksCommandHandler, logger *slog.Logger) *OverdueSweepJob {
	return &OverdueSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_sweep_job"),
	}
}

// Start begins the overdue sweep job to run every minute.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepOverdueTrucksCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue sweep job started (running every minute)")
	return nil
}

// Stop stops the overdue sweep job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue sweep job stopped")
}
