package jobs

import (
	"context"
	"log/slog"

	"dockyard/internal/pkg/cache"

	"github.com/robfig/cron/v3"
)

// CacheRefreshJob periodically drops the cached query views. The store
// change listener invalidates them the moment a notification arrives; this
// job is the fallback for notifications lost across listener reconnects.
// Runs every minute.
type CacheRefreshJob struct {
	cache  *cache.QueryCache
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCacheRefreshJob creates the fallback cache refresh job.
func NewCacheRefreshJob(queryCache *cache.QueryCache, logger *slog.Logger) *CacheRefreshJob {
	return &CacheRefreshJob{
		cache:  queryCache,
		cron:   cron.New(),
		logger: logger.With("component", "cache_refresh_job"),
	}
}

// Start begins the cache refresh job to run every minute.
func (j *CacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.cache.InvalidatePattern("trucks:")
		j.cache.InvalidatePattern("exceptions:")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cache refresh job started (running every minute)")
	return nil
}

// Stop stops the cache refresh job.
func (j *CacheRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cache refresh job stopped")
}
