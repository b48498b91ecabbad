package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand represents a request to advance an order through its
// lifecycle (pending → confirmed → preparing). Dispatch-managed transitions —
// out_for_delivery, delivered, cancelled — are rejected by the order aggregate
// and must go through the dispatch commands instead.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID and target status are valid; whether the
// transition is legal is decided by the aggregate at handling time.
func NewSetOrderStatusCommand(orderID kernel.UUID, status order.Status) (SetOrderStatusCommand, error) {
	command := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetOrderStatusCommandIsNotConstructed if validation fails.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order ID from the command.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status from the command.
func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
