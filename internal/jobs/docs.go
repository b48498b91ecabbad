// Package jobs provides scheduled background tasks for the drone delivery
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. FleetMetricsJob - Samples the per-status fleet composition and pushes it
// to the observability gauge sink at a configurable interval
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(countsSource, gaugeSink, 30*time.Second, logger)
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
// The metrics job uses an "@every" cron schedule derived from configuration
// (30 seconds by default). Cycles are wrapped with cron.SkipIfStillRunning,
// so a slow database drops the overlapping cycle instead of stacking queries.
//
// # Error Handling
//
// A failed metrics cycle is logged and the previous gauge values remain until
// the next successful cycle. Cycle failures never stop the schedule.
package jobs
