package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrRegisterDroneCommandIsNotConstructed = errors.New(
		"RegisterDroneCommand must be created via NewRegisterDroneCommand constructor",
	)
	ErrModelIsRequired        = errors.New("model is required")
	ErrSerialNumberIsRequired = errors.New("serial number is required")
)

// RegisterDroneCommand represents a request to register a new drone in the fleet.
// Encapsulates the airframe identity, payload capacity, battery state, and flight
// characteristics needed to create a drone aggregate.
//
// Example:
//
//	battery, _ := drone.NewBattery(95, 100)
//	cmd, err := NewRegisterDroneCommand(shopID, "DJI FlyCart 30", "FC30-0042",
//	    drone.Capacity{WeightKg: 30, VolumeCm3: 70000}, battery,
//	    drone.Specifications{MaxSpeedKmh: 80, MaxAltitudeM: 120, RangeKm: 28, FlightTimeMin: 29},
//	    drone.Unknown)
//	if err != nil {
//	    return fmt.Errorf("invalid drone data: %w", err)
//	}
//
//	handler := NewRegisterDroneCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register drone: %w", err)
//	}
//	fmt.Printf("Registered drone with ID: %s", cmd.DroneID())
type RegisterDroneCommand struct { //nolint:recvcheck //using for validation
	droneID        kernel.UUID
	shopID         kernel.UUID
	model          string
	serialNumber   string
	capacity       drone.Capacity
	battery        drone.Battery
	specifications drone.Specifications
	status         drone.Status

	guard guard.ConstructorGuard
}

// NewRegisterDroneCommand creates a command to register a new drone.
// Automatically generates a unique ID for the drone. A status of drone.Unknown
// means the drone starts in the default Available status; any other value must
// be a valid status and becomes the drone's initial status.
func NewRegisterDroneCommand(
	shopID kernel.UUID,
	model string,
	serialNumber string,
	capacity drone.Capacity,
	battery drone.Battery,
	specifications drone.Specifications,
	status drone.Status,
) (RegisterDroneCommand, error) {
	command := RegisterDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(kernel.NewUUID()),
		command.setShopID(shopID),
		command.setModel(model),
		command.setSerialNumber(serialNumber),
		command.setCapacity(capacity),
		command.setBattery(battery),
		command.setSpecifications(specifications),
		command.setStatus(status),
	); err != nil {
		return RegisterDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDroneCommandIsNotConstructed if validation fails.
func (c RegisterDroneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDroneCommandIsNotConstructed)
}

// DroneID returns the generated drone ID from the command.
func (c RegisterDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// ShopID returns the owning shop reference from the command.
func (c RegisterDroneCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Model returns the airframe model name from the command.
func (c RegisterDroneCommand) Model() string {
	return c.model
}

// SerialNumber returns the unique airframe serial from the command.
func (c RegisterDroneCommand) SerialNumber() string {
	return c.serialNumber
}

// Capacity returns the payload limits from the command.
func (c RegisterDroneCommand) Capacity() drone.Capacity {
	return c.capacity
}

// Battery returns the battery state from the command.
func (c RegisterDroneCommand) Battery() drone.Battery {
	return c.battery
}

// Specifications returns the flight characteristics from the command.
func (c RegisterDroneCommand) Specifications() drone.Specifications {
	return c.specifications
}

// Status returns the requested initial status from the command.
// drone.Unknown means the default Available status applies.
func (c RegisterDroneCommand) Status() drone.Status {
	return c.status
}

func (c *RegisterDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.droneID = id
	return nil
}

func (c *RegisterDroneCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	c.shopID = shopID
	return nil
}

func (c *RegisterDroneCommand) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

func (c *RegisterDroneCommand) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return ErrSerialNumberIsRequired
	}

	c.serialNumber = serialNumber
	return nil
}

func (c *RegisterDroneCommand) setCapacity(capacity drone.Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	c.capacity = capacity
	return nil
}

func (c *RegisterDroneCommand) setBattery(battery drone.Battery) error {
	if err := battery.Validate(); err != nil {
		return err
	}

	c.battery = battery
	return nil
}

func (c *RegisterDroneCommand) setSpecifications(specifications drone.Specifications) error {
	if err := specifications.Validate(); err != nil {
		return err
	}

	c.specifications = specifications
	return nil
}

func (c *RegisterDroneCommand) setStatus(status drone.Status) error {
	if status == drone.Unknown {
		c.status = drone.Unknown
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
