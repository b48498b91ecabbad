package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand marks an out-for-delivery order as delivered and
// releases its drone back to the available pool.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete the given order's delivery.
func NewCompleteDeliveryCommand(orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to complete from the command.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
