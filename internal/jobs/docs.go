// Package jobs provides scheduled background tasks for the dock yard
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CacheRefreshJob - Runs every minute to drop cached query views in case
// a store change notification was missed
// 2. OverdueSweepJob - Runs every minute to flag trucks that missed their
// booked arrival
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, queryCache, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
