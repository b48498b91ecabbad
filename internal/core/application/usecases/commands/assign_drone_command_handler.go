package commands

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/core/ports"
)

// ErrNoDroneAvailable is returned when no drone can take the order: either no
// drone passed the eligibility filter, or every eligible candidate was claimed
// by a concurrent assignment before this handler could reserve it.
var ErrNoDroneAvailable = errors.New("no drone available")

// AssignDroneCommandHandler orchestrates the drone dispatch process.
// Ranks the available fleet for the order, then walks the candidates
// reserving the first one it can claim. The reservation is a compare-and-swap
// on the drone's status, so two handlers racing for the same drone cannot
// both win it; the loser simply moves to the next candidate. The order and
// drone transitions commit in a single transaction.
//
// Example:
//
//	handler := NewAssignDroneCommandHandler(uowFactory, services.NewDroneSelector(20))
//	cmd, _ := NewAssignDroneCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoDroneAvailable):
//	    log.Println("No dispatchable drones")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Drone assigned successfully")
//	}
type AssignDroneCommandHandler struct {
	uowFactory UoWFactory
	selector   services.DroneSelector
}

// NewAssignDroneCommandHandler creates a handler for drone dispatch operations.
// Requires a UoWFactory for coordinating transactional updates across
// repositories and a DroneSelector encoding the candidate ranking policy.
func NewAssignDroneCommandHandler(
	uowFactory UoWFactory,
	selector services.DroneSelector,
) AssignDroneCommandHandler {
	return AssignDroneCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

// Handle processes the drone assignment command.
// Loads the order, ranks the shop's available drones, and claims the best
// candidate whose status CAS succeeds. The order moves to out_for_delivery
// bound to the claimed drone, the drone moves to busy, and both commit
// atomically. Returns ErrNoDroneAvailable when the candidate list is
// exhausted, whether by eligibility or by concurrent claims, and
// ports.ErrOrderStatusChanged when a concurrent operation transitioned the
// order after it was read.
func (h AssignDroneCommandHandler) Handle(ctx context.Context, command AssignDroneCommand) error {
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

	drones, err := droneRepo.GetAllAvailable(ctx, nil)
	if err != nil {
		return err
	}

	candidates, err := h.selector.Rank(orderEntity, drones)
	if errors.Is(err, services.ErrNoEligibleDrone) {
		return ErrNoDroneAvailable
	}
	if err != nil {
		return err
	}

	assigned, err := h.claimFirst(ctx, droneRepo, candidates)
	if err != nil {
		return err
	}

	previous := orderEntity.Status()
	if err = orderEntity.AssignDrone(assigned.ID()); err != nil {
		return err
	}

	// The claimed drone's CAS serializes the fleet side; this CAS serializes
	// the order side. Two handlers assigning the same order from the same
	// snapshot cannot both move it to out_for_delivery.
	if err = ordersRepo.UpdateIfStatus(ctx, orderEntity, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// claimFirst walks the ranked candidates and reserves the first drone whose
// available→busy CAS succeeds. A failed CAS means another assignment won the
// drone; the next candidate is tried. Returns ErrNoDroneAvailable when every
// candidate was lost to concurrent claims.
func (h AssignDroneCommandHandler) claimFirst(
	ctx context.Context,
	droneRepo ports.DroneRepository,
	candidates []*drone.Drone,
) (*drone.Drone, error) {
	for _, candidate := range candidates {
		if err := candidate.ChangeStatus(drone.Busy); err != nil {
			return nil, err
		}

		err := droneRepo.UpdateIfStatus(ctx, candidate, drone.Available)
		if errors.Is(err, ports.ErrDroneStatusChanged) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return candidate, nil
	}

	return nil, ErrNoDroneAvailable
}
