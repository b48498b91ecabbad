package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
)

// CompleteDeliveryCommandHandler finalizes a delivery.
// Moves the order from out_for_delivery to delivered, clears the drone
// binding, and returns the drone to the available pool, all in one
// transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// Returns *errs.ObjectNotFoundError if the order does not exist,
// *errs.InvalidTransitionError if the order is not out for delivery, and
// ports.ErrOrderStatusChanged if a concurrent operation moved the order
// first. The drone's release is a compare-and-swap on the status it held
// when read, so a concurrent fleet operation surfaces as
// ports.ErrDroneStatusChanged.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
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
	ordersRepo := uow.OrderRepository()

	orderEntity, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	assignedDroneID := orderEntity.Drone()

	previous := orderEntity.Status()
	if err = orderEntity.CompleteDelivery(); err != nil {
		return err
	}

	if err = ordersRepo.UpdateIfStatus(ctx, orderEntity, previous); err != nil {
		return err
	}

	if assignedDroneID != nil {
		if err = h.releaseDrone(ctx, droneRepo, *assignedDroneID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseDrone returns the order's drone to the available pool. The CAS on
// the status read keeps a concurrent fleet transition (say busy→offline from
// an operator) from being overwritten. A drone that can no longer reach
// available — retired mid-flight, for instance — is left where the fleet
// operation put it; the order transition must not fail on its account.
func (h CompleteDeliveryCommandHandler) releaseDrone(
	ctx context.Context,
	droneRepo ports.DroneRepository,
	droneID kernel.UUID,
) error {
	droneEntity, err := droneRepo.Get(ctx, droneID)
	if err != nil {
		return err
	}

	previous := droneEntity.Status()
	if previous == drone.Available || !previous.CanTransitionTo(drone.Available) {
		return nil
	}

	if err = droneEntity.ChangeStatus(drone.Available); err != nil {
		return err
	}

	return droneRepo.UpdateIfStatus(ctx, droneEntity, previous)
}
