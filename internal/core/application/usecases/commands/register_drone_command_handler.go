package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
)

// RegisterDroneCommandHandler handles the business logic for drone registration.
// Creates and persists new drone aggregates with their airframe identity and
// flight characteristics.
//
// Example:
//
//	handler := NewRegisterDroneCommandHandler(uowFactory)
//	cmd, _ := NewRegisterDroneCommand(shopID, "Wingcopter 198", "WC198-0105",
//	    capacity, battery, specs, drone.Unknown)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("drone registration failed: %w", err)
//	}
type RegisterDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewRegisterDroneCommandHandler creates a handler for drone registration.
// Requires a DroneUoWFactory for transactional persistence operations.
func NewRegisterDroneCommandHandler(uowFactory DroneUoWFactory) RegisterDroneCommandHandler {
	return RegisterDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drone registration command.
// Creates a new drone aggregate and persists it within a transaction. A
// duplicate serial number surfaces as *errs.ObjectAlreadyExistsError from the
// repository. Automatically rolls back on any error to prevent partial data.
func (h *RegisterDroneCommandHandler) Handle(ctx context.Context, cmd RegisterDroneCommand) error {
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
	droneEntity, err := drone.NewDrone(
		cmd.DroneID(),
		cmd.ShopID(),
		cmd.Model(),
		cmd.SerialNumber(),
		cmd.Capacity(),
		cmd.Battery(),
		cmd.Specifications(),
	)
	if err != nil {
		return err
	}

	// New drones start Available; any other requested initial status must be a
	// legal transition from Available.
	if cmd.Status() != drone.Unknown && cmd.Status() != drone.Available {
		if err = droneEntity.ChangeStatus(cmd.Status()); err != nil {
			return err
		}
	}

	if err = droneRepo.Add(ctx, droneEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
