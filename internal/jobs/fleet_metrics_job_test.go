package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStatusCountsSource is a mock implementation of StatusCountsSource interface.
type MockStatusCountsSource struct {
	mock.Mock
}

func (m *MockStatusCountsSource) Handle(
	ctx context.Context,
	query queries.GetDroneStatusCountsQuery,
) (map[drone.Status]int, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[drone.Status]int), args.Error(1)
}

// MockFleetGaugeSink is a mock implementation of FleetGaugeSink interface.
type MockFleetGaugeSink struct {
	mock.Mock
}

func (m *MockFleetGaugeSink) SetDroneStatusCounts(counts map[drone.Status]int) {
	m.Called(counts)
}

func TestFleetMetricsJob_RunCycle_PushesCountsToSink(t *testing.T) {
	// Arrange
	ctx := t.Context()
	source := new(MockStatusCountsSource)
	sink := new(MockFleetGaugeSink)

	counts := map[drone.Status]int{
		drone.Available:   5,
		drone.Busy:        3,
		drone.Maintenance: 1,
		drone.Offline:     0,
		drone.Retired:     2,
	}

	mock.InOrder(
		source.On("Handle", ctx, mock.AnythingOfType("queries.GetDroneStatusCountsQuery")).
			Return(counts, nil).Once(),
		sink.On("SetDroneStatusCounts", counts).Once(),
	)

	job := jobs.NewFleetMetricsJob(source, sink, 30*time.Second, slog.Default())

	// Act
	err := job.RunCycle(ctx)

	// Assert
	require.NoError(t, err)
	source.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestFleetMetricsJob_RunCycle_SourceFails_SinkUntouched(t *testing.T) {
	// Arrange
	ctx := t.Context()
	source := new(MockStatusCountsSource)
	sink := new(MockFleetGaugeSink)

	sourceErr := errors.New("connection refused")
	source.On("Handle", ctx, mock.AnythingOfType("queries.GetDroneStatusCountsQuery")).
		Return(nil, sourceErr).Once()

	job := jobs.NewFleetMetricsJob(source, sink, 30*time.Second, slog.Default())

	// Act
	err := job.RunCycle(ctx)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, sourceErr)
	source.AssertExpectations(t)
	sink.AssertNotCalled(t, "SetDroneStatusCounts", mock.Anything)
}

func TestFleetMetricsJob_StartStop(t *testing.T) {
	// Arrange
	source := new(MockStatusCountsSource)
	sink := new(MockFleetGaugeSink)

	job := jobs.NewFleetMetricsJob(source, sink, time.Hour, slog.Default())

	// Act
	err := job.Start()

	// Assert
	require.NoError(t, err)
	job.Stop()
}

func TestJobManager_StartAll_StopAll(t *testing.T) {
	// Arrange
	source := new(MockStatusCountsSource)
	sink := new(MockFleetGaugeSink)

	manager := jobs.NewJobManager(source, sink, time.Hour, slog.Default())

	// Act
	err := manager.StartAll()

	// Assert
	require.NoError(t, err)
	manager.StopAll()
}
