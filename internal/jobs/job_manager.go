package jobs

import (
	"fmt"
	"log/slog"

	"dockyard/internal/core/application/usecases/commands"
	"dockyard/internal/pkg/cache"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cacheRefreshJob *CacheRefreshJob
	overdueSweepJob *OverdueSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepOverdueTrucksCommandHandler,
	queryCache *cache.QueryCache,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cacheRefreshJob: NewCacheRefreshJob(queryCache, logger),
		overdueSweepJob: NewOverdueSweepJob(sweepHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cacheRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start cache refresh job: %w", err)
	}

	if err := jm.overdueSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.cacheRefreshJob.Stop()
		return fmt.Errorf("failed to start overdue sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueSweepJob.Stop()
	jm.cacheRefreshJob.Stop()
}
