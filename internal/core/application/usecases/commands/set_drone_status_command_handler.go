package commands

import (
	"context"
)

// SetDroneStatusCommandHandler handles operational status transitions for
// drones. Loads the drone, applies the transition through the aggregate's
// status machine, and persists the result with a compare-and-swap on the
// status that was read, so a concurrent transition is surfaced as
// ports.ErrDroneStatusChanged instead of being silently overwritten.
type SetDroneStatusCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewSetDroneStatusCommandHandler creates a handler for drone status changes.
// Requires a DroneUoWFactory for transactional persistence operations.
func NewSetDroneStatusCommandHandler(uowFactory DroneUoWFactory) SetDroneStatusCommandHandler {
	return SetDroneStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns *errs.ObjectNotFoundError if the drone does not exist,
// *errs.InvalidTransitionError if the status machine forbids the move, and
// ports.ErrDroneStatusChanged if another writer transitioned the drone first.
func (h *SetDroneStatusCommandHandler) Handle(ctx context.Context, cmd SetDroneStatusCommand) error {
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

	previous := droneEntity.Status()
	if err = droneEntity.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = droneRepo.UpdateIfStatus(ctx, droneEntity, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
