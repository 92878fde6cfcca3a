// Package jobs provides scheduled background tasks for the diet board
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OverdueOrderJob - Runs every minute and warns about New or Preparing
// orders that have been sitting longer than the configured threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderRepo, 45*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job run failures are logged and the schedule keeps running; a missed
// sweep is caught by the next one.
package jobs
