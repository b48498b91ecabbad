package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order from any non-terminal state.
// Cancelling an already cancelled order is a no-op; cancelling a delivered
// order is rejected.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given order.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel from the command.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
