// Package jobs provides scheduled background tasks for the food delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. RatingReconciliationJob - Runs hourly to rewrite every restaurant's
// rating from its stored reviews, repairing drift from the incremental
// per-mutation updates.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileRatingsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next tick; a failed
// reconciliation leaves the previously stored ratings in place.
package jobs
