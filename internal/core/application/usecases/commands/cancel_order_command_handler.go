package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order and, when the order was already
// out for delivery, recalls its drone to the available pool. Both updates
// commit in one transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Cancelling an already cancelled order succeeds without touching storage.
// Returns *errs.ObjectNotFoundError if the order does not exist,
// *errs.InvalidTransitionError if the order was already delivered, and
// ports.ErrOrderStatusChanged if a concurrent operation moved the order
// first.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	if orderEntity.Status() == order.Cancelled {
		return nil
	}

	assignedDroneID := orderEntity.Drone()

	previous := orderEntity.Status()
	if err = orderEntity.Cancel(); err != nil {
		return err
	}

	if err = ordersRepo.UpdateIfStatus(ctx, orderEntity, previous); err != nil {
		return err
	}

	if assignedDroneID != nil {
		droneEntity, getErr := droneRepo.Get(ctx, *assignedDroneID)
		if getErr != nil {
			return getErr
		}

		// A drone that can no longer reach available — retired mid-flight,
		// for instance — stays where the fleet operation put it; the
		// cancellation itself still goes through.
		droneStatus := droneEntity.Status()
		if droneStatus != drone.Available && droneStatus.CanTransitionTo(drone.Available) {
			if err = droneEntity.ChangeStatus(drone.Available); err != nil {
				return err
			}

			if err = droneRepo.UpdateIfStatus(ctx, droneEntity, droneStatus); err != nil {
				return err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
