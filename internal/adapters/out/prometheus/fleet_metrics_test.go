package prometheus_test

import (
	"testing"

	fleetprom "dronedelivery/internal/adapters/out/prometheus"
	"dronedelivery/internal/core/domain/model/drone"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFleetMetrics_RegistersGauges(t *testing.T) {
	// Arrange
	registry := prom.NewRegistry()

	// Act
	metrics, err := fleetprom.NewFleetMetrics(registry, func() float64 { return 3 })

	// Assert
	require.NoError(t, err)
	require.NotNil(t, metrics)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "tracking_active_connections")
}

func TestNewFleetMetrics_DoubleRegistration_Fails(t *testing.T) {
	// Arrange
	registry := prom.NewRegistry()
	_, err := fleetprom.NewFleetMetrics(registry, func() float64 { return 0 })
	require.NoError(t, err)

	// Act
	_, err = fleetprom.NewFleetMetrics(registry, func() float64 { return 0 })

	// Assert
	assert.Error(t, err)
}

func TestFleetMetrics_SetDroneStatusCounts_UpdatesGauges(t *testing.T) {
	// Arrange
	registry := prom.NewRegistry()
	metrics, err := fleetprom.NewFleetMetrics(registry, func() float64 { return 0 })
	require.NoError(t, err)

	counts := map[drone.Status]int{
		drone.Available:   4,
		drone.Busy:        2,
		drone.Maintenance: 0,
		drone.Offline:     1,
		drone.Retired:     0,
	}

	// Act
	metrics.SetDroneStatusCounts(counts)

	// Assert
	families, err := registry.Gather()
	require.NoError(t, err)

	var sampled map[string]float64
	for _, family := range families {
		if family.GetName() != "drone_status" {
			continue
		}

		sampled = make(map[string]float64, len(family.GetMetric()))
		for _, metric := range family.GetMetric() {
			require.Len(t, metric.GetLabel(), 1)
			sampled[metric.GetLabel()[0].GetValue()] = metric.GetGauge().GetValue()
		}
	}

	require.NotNil(t, sampled, "drone_status family should be gathered")
	assert.Equal(t, float64(4), sampled[drone.Available.String()])
	assert.Equal(t, float64(2), sampled[drone.Busy.String()])
	assert.Equal(t, float64(0), sampled[drone.Maintenance.String()])
	assert.Equal(t, float64(1), sampled[drone.Offline.String()])
	assert.Equal(t, float64(0), sampled[drone.Retired.String()])
}

func TestFleetMetrics_ActiveConnections_SampledOnScrape(t *testing.T) {
	// Arrange
	registry := prom.NewRegistry()
	connections := 0
	_, err := fleetprom.NewFleetMetrics(registry, func() float64 { return float64(connections) })
	require.NoError(t, err)

	// Act
	connections = 7

	// Assert
	families, err := registry.Gather()
	require.NoError(t, err)

	found := false
	for _, family := range families {
		if family.GetName() == "tracking_active_connections" {
			found = true
			require.Len(t, family.GetMetric(), 1)
			assert.Equal(t, float64(7), family.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, found)
}
