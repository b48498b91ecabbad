package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrAssignDroneCommandIsNotConstructed = errors.New(
	"AssignDroneCommand must be created via NewAssignDroneCommand constructor",
)

// AssignDroneCommand triggers the dispatch of a drone to a prepared order.
// This command represents the business operation of matching fleet capacity
// with an order ready to leave the shop.
//
// Example:
//
//	cmd, _ := NewAssignDroneCommand(orderID)
//	handler := NewAssignDroneCommandHandler(uowFactory, selector)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoDroneAvailable) {
//	    log.Printf("Fleet exhausted, order %s stays queued", orderID)
//	}
type AssignDroneCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDroneCommand creates a command to dispatch a drone to the given order.
func NewAssignDroneCommand(orderID kernel.UUID) (AssignDroneCommand, error) {
	command := AssignDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AssignDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDroneCommandIsNotConstructed if validation fails.
func (c AssignDroneCommand) Validate() error {
	return c.guard.Validate(ErrAssignDroneCommandIsNotConstructed)
}

// OrderID returns the order to dispatch from the command.
func (c AssignDroneCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignDroneCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
