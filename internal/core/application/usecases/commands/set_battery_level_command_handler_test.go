package commands_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetBatteryLevelCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		droneID := kernel.NewUUID()

		cmd, err := commands.NewSetBatteryLevelCommand(droneID, 42)

		require.NoError(t, err)
		assert.Equal(t, droneID, cmd.DroneID())
		assert.Equal(t, 42, cmd.Level())
	})

	t.Run("zero drone ID", func(t *testing.T) {
		_, err := commands.NewSetBatteryLevelCommand(kernel.UUID{}, 42)
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.SetBatteryLevelCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrSetBatteryLevelCommandIsNotConstructed)
	})
}

func TestSetBatteryLevelCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	droneEntity := testDrone(t, "FC30-0042", 90)

	cmd, err := commands.NewSetBatteryLevelCommand(droneEntity.ID(), 45)
	require.NoError(t, err)

	mockRepo := new(MockDroneRepository)
	mockUoW := new(MockDroneUoW)
	mockFactory := new(MockDroneUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DroneRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, droneEntity.ID()).Return(droneEntity, nil).Once(),
		mockRepo.On("Update", ctx, droneEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSetBatteryLevelCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 45, droneEntity.Battery().Current())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestSetBatteryLevelCommandHandler_Handle_LevelOutOfRange(t *testing.T) {
	// Arrange
	ctx := t.Context()
	droneEntity := testDrone(t, "FC30-0042", 90)

	// capacity is 100, 150 must be rejected, not clamped
	cmd, err := commands.NewSetBatteryLevelCommand(droneEntity.ID(), 150)
	require.NoError(t, err)

	mockRepo := new(MockDroneRepository)
	mockUoW := new(MockDroneUoW)
	mockFactory := new(MockDroneUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DroneRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, droneEntity.ID()).Return(droneEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSetBatteryLevelCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, 90, droneEntity.Battery().Current())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestSetBatteryLevelCommandHandler_Handle_LowLevelDoesNotTransition(t *testing.T) {
	// Arrange
	ctx := t.Context()
	droneEntity := testDrone(t, "FC30-0042", 90)
	require.NoError(t, droneEntity.ChangeStatus(drone.Busy))

	cmd, err := commands.NewSetBatteryLevelCommand(droneEntity.ID(), 3)
	require.NoError(t, err)

	mockRepo := new(MockDroneRepository)
	mockUoW := new(MockDroneUoW)
	mockFactory := new(MockDroneUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DroneRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, droneEntity.ID()).Return(droneEntity, nil).Once(),
		mockRepo.On("Update", ctx, droneEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSetBatteryLevelCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, droneEntity.Battery().Current())
	assert.Equal(t, drone.Busy, droneEntity.Status(), "low battery must not force a status change")
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
