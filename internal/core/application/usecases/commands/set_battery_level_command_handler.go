package commands

import (
	"context"
)

// SetBatteryLevelCommandHandler records battery telemetry for a drone.
// A low reading never transitions the drone by itself; keeping a low-battery
// drone out of dispatch is the selection policy's job.
type SetBatteryLevelCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewSetBatteryLevelCommandHandler creates a handler for battery telemetry.
// Requires a DroneUoWFactory for transactional persistence operations.
func NewSetBatteryLevelCommandHandler(uowFactory DroneUoWFactory) SetBatteryLevelCommandHandler {
	return SetBatteryLevelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the battery telemetry command.
// Returns *errs.ObjectNotFoundError if the drone does not exist and
// *errs.ValueIsOutOfRangeError if the level exceeds the battery's capacity
// or is negative.
func (h *SetBatteryLevelCommandHandler) Handle(ctx context.Context, cmd SetBatteryLevelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	droneEntity, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = droneEntity.SetBatteryLevel(cmd.Level()); err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, droneEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
