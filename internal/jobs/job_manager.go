package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fleetMetricsJob *FleetMetricsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the counts source and gauge sink as dependencies to wire up the
// metrics sampling cycle.
func NewJobManager(
	countsSource StatusCountsSource,
	gaugeSink FleetGaugeSink,
	metricsInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fleetMetricsJob: NewFleetMetricsJob(countsSource, gaugeSink, metricsInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fleetMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet metrics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fleetMetricsJob.Stop()
}
