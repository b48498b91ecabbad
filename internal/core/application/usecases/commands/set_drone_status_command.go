package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrSetDroneStatusCommandIsNotConstructed = errors.New(
	"SetDroneStatusCommand must be created via NewSetDroneStatusCommand constructor",
)

// SetDroneStatusCommand represents a request to transition a drone to a new
// operational status. The transition itself is validated by the drone
// aggregate against its status machine.
//
// Example:
//
//	cmd, err := NewSetDroneStatusCommand(droneID, drone.Maintenance)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewSetDroneStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type SetDroneStatusCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	status  drone.Status

	guard guard.ConstructorGuard
}

// NewSetDroneStatusCommand creates a command to change a drone's status.
// Validates that the drone ID and target status are valid; whether the
// transition is legal from the drone's current status is decided by the
// aggregate at handling time.
func NewSetDroneStatusCommand(droneID kernel.UUID, status drone.Status) (SetDroneStatusCommand, error) {
	command := SetDroneStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setStatus(status),
	); err != nil {
		return SetDroneStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetDroneStatusCommandIsNotConstructed if validation fails.
func (c SetDroneStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDroneStatusCommandIsNotConstructed)
}

// DroneID returns the target drone ID from the command.
func (c SetDroneStatusCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Status returns the requested target status from the command.
func (c SetDroneStatusCommand) Status() drone.Status {
	return c.status
}

func (c *SetDroneStatusCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	c.droneID = droneID
	return nil
}

func (c *SetDroneStatusCommand) setStatus(status drone.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
