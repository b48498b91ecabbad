package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"

	"github.com/robfig/cron/v3"
)

// StatusCountsSource supplies the per-status fleet counts for a metrics cycle.
// Satisfied by queries.GetDroneStatusCountsQueryHandler.
type StatusCountsSource interface {
	Handle(ctx context.Context, query queries.GetDroneStatusCountsQuery) (map[drone.Status]int, error)
}

// FleetGaugeSink receives the sampled fleet composition.
// Satisfied by the prometheus adapter.
type FleetGaugeSink interface {
	SetDroneStatusCounts(counts map[drone.Status]int)
}

// FleetMetricsJob periodically samples the fleet composition and pushes it to
// the gauge sink. A failed cycle is logged and the next cycle runs normally.
type FleetMetricsJob struct {
	source   StatusCountsSource
	sink     FleetGaugeSink
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFleetMetricsJob creates the fleet metrics sampling job.
// The interval comes from configuration; a slow database makes
// SkipIfStillRunning drop the overlapping cycle instead of stacking queries.
func NewFleetMetricsJob(
	source StatusCountsSource,
	sink FleetGaugeSink,
	interval time.Duration,
	logger *slog.Logger,
) *FleetMetricsJob {
	return &FleetMetricsJob{
		source:   source,
		sink:     sink,
		interval: interval,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "fleet_metrics_job"),
	}
}

// RunCycle executes one sampling cycle: query the counts, push them to the
// sink. The counts map is zero-filled per status, so gauges reset when a
// status empties.
func (j *FleetMetricsJob) RunCycle(ctx context.Context) error {
	counts, err := j.source.Handle(ctx, queries.NewGetDroneStatusCountsQuery())
	if err != nil {
		return err
	}

	j.sink.SetDroneStatusCounts(counts)
	return nil
}

// Start schedules the sampling cycle at the configured interval.
func (j *FleetMetricsJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		if err := j.RunCycle(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Fleet metrics cycle failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet metrics job started", "interval", j.interval.String())
	return nil
}

// Stop stops the fleet metrics job.
func (j *FleetMetricsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet metrics job stopped")
}
