package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrSetBatteryLevelCommandIsNotConstructed = errors.New(
	"SetBatteryLevelCommand must be created via NewSetBatteryLevelCommand constructor",
)

// SetBatteryLevelCommand represents a battery telemetry report for a drone.
// The level is validated against the drone's battery capacity by the
// aggregate, never clamped.
type SetBatteryLevelCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	level   int

	guard guard.ConstructorGuard
}

// NewSetBatteryLevelCommand creates a command to record a drone's battery level.
// The level's range is checked against the drone's own capacity at handling
// time; here only the drone ID is validated.
func NewSetBatteryLevelCommand(droneID kernel.UUID, level int) (SetBatteryLevelCommand, error) {
	command := SetBatteryLevelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDroneID(droneID); err != nil {
		return SetBatteryLevelCommand{}, err
	}
	command.level = level

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetBatteryLevelCommandIsNotConstructed if validation fails.
func (c SetBatteryLevelCommand) Validate() error {
	return c.guard.Validate(ErrSetBatteryLevelCommandIsNotConstructed)
}

// DroneID returns the target drone ID from the command.
func (c SetBatteryLevelCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Level returns the reported battery level from the command.
func (c SetBatteryLevelCommand) Level() int {
	return c.level
}

func (c *SetBatteryLevelCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	c.droneID = droneID
	return nil
}
