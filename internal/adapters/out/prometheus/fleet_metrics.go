// Package prometheus exports the service's observability signals.
//
// Fleet composition and realtime connection counts are gauges; HTTP traffic
// is a request counter plus a latency histogram fed by router middleware.
// Everything is sampled by pull on the /metrics endpoint.
package prometheus

import (
	"dronedelivery/internal/core/domain/model/drone"

	prom "github.com/prometheus/client_golang/prometheus"
)

// FleetMetrics is the observability sink for fleet composition gauges.
// One instance is registered per process.
type FleetMetrics struct {
	droneStatus *prom.GaugeVec
}

// NewFleetMetrics registers the fleet gauges on the given registerer.
// activeConnections is sampled on every scrape for the realtime connection
// gauge; pass the tracking hub's counter.
func NewFleetMetrics(registerer prom.Registerer, activeConnections func() float64) (*FleetMetrics, error) {
	droneStatus := prom.NewGaugeVec(
		prom.GaugeOpts{
			Name: "drone_status",
			Help: "Number of drones per status.",
		},
		[]string{"status"},
	)
	if err := registerer.Register(droneStatus); err != nil {
		return nil, err
	}

	connectionsGauge := prom.NewGaugeFunc(
		prom.GaugeOpts{
			Name: "tracking_active_connections",
			Help: "Number of active realtime tracking connections.",
		},
		activeConnections,
	)
	if err := registerer.Register(connectionsGauge); err != nil {
		return nil, err
	}

	return &FleetMetrics{droneStatus: droneStatus}, nil
}

// SetDroneStatusCounts replaces the per-status fleet gauges with a fresh
// sample. Statuses absent from counts keep their previous value, so callers
// must pass a zero-filled map covering every status.
func (m *FleetMetrics) SetDroneStatusCounts(counts map[drone.Status]int) {
	for status, count := range counts {
		m.droneStatus.WithLabelValues(status.String()).Set(float64(count))
	}
}
