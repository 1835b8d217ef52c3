// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the automatic order lifecycle.
//
// # Available Jobs
//
// 1. PendingOrdersJob - Runs every 30 seconds to promote pending orders that
// have waited at least one minute since creation to processing.
// 2. ProcessingOrdersJob - Runs every 45 seconds to complete processing
// orders whose last update is at least two minutes old.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advancePendingHandler, completeProcessingHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use cron.Every constant-delay schedules rather than cron
// expressions, so the interval is exact and independent of wall-clock
// alignment. The dwell thresholds live with the command handlers; the job
// interval only bounds pickup latency past the dwell.
//
// # Error Handling
//
//   - Both jobs log failures and keep their schedule; a failed run is retried
//     naturally on the next tick.
//   - Runs that find no eligible orders are silent, so logs show actual
//     lifecycle activity only.
//   - Failed job starts stop any already running jobs.
package jobs
