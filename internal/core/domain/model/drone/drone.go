package drone

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Domain errors for drone operations.
var (
	// ErrModelIsRequired is returned when attempting to create a drone without a model name.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrSerialNumberIsRequired is returned when attempting to create a drone without a serial number.
	ErrSerialNumberIsRequired = errs.NewValueIsRequiredError("serialNumber")
	// ErrDroneIsNotConstructed is returned when using an improperly initialized Drone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
)

// Capacity describes the static payload limits of a drone.
type Capacity struct {
	// WeightKg is the maximum payload weight in kilograms.
	WeightKg float64
	// VolumeCm3 is the maximum payload volume in cubic centimeters.
	VolumeCm3 float64
}

// Validate checks that both capacity limits are positive.
func (c Capacity) Validate() error {
	if c.WeightKg <= 0 {
		return errs.NewValueIsRequiredError("capacity weight")
	}
	if c.VolumeCm3 <= 0 {
		return errs.NewValueIsRequiredError("capacity volume")
	}
	return nil
}

// Specifications describes the static flight characteristics of a drone.
// These values are informational; the system records them but computes no
// trajectories from them.
type Specifications struct {
	// MaxSpeedKmh is the maximum speed in km/h.
	MaxSpeedKmh float64
	// MaxAltitudeM is the maximum flight altitude in meters.
	MaxAltitudeM float64
	// RangeKm is the maximum flight range in kilometers.
	RangeKm float64
	// FlightTimeMin is the maximum flight time in minutes.
	FlightTimeMin float64
}

// Validate checks that every specification value is positive.
func (s Specifications) Validate() error {
	if s.MaxSpeedKmh <= 0 {
		return errs.NewValueIsRequiredError("specifications maxSpeed")
	}
	if s.MaxAltitudeM <= 0 {
		return errs.NewValueIsRequiredError("specifications maxAltitude")
	}
	if s.RangeKm <= 0 {
		return errs.NewValueIsRequiredError("specifications range")
	}
	if s.FlightTimeMin <= 0 {
		return errs.NewValueIsRequiredError("specifications flightTime")
	}
	return nil
}

// Drone represents a delivery drone in the fleet. It is the aggregate root for
// fleet state: operational status, battery level, and static capabilities.
//
// Drone follows these invariants:
//   - Must have a valid unique identifier and owning shop reference
//   - Serial number is non-empty and immutable once assigned
//   - Battery charge never goes negative or exceeds its capacity
//   - Status transitions follow the edges defined on Status
//   - Retired is terminal: no status change is accepted afterwards
//   - Can only be created through NewDrone or RestoreDrone
//
// Drones are never deleted; withdrawal from the fleet is a transition to the
// Retired status.
type Drone struct {
	// id is the unique identifier for the drone
	id kernel.UUID

	// shopID references the shop operating this drone
	shopID kernel.UUID

	// model is the manufacturer model name
	model string

	// serialNumber uniquely identifies the physical airframe
	serialNumber string

	// capacity holds the static payload limits
	capacity Capacity

	// battery holds the current charge state
	battery Battery

	// specifications holds the static flight characteristics
	specifications Specifications

	// status is the current operational state
	status Status

	// guard ensures the drone was properly constructed
	guard guard.ConstructorGuard
}

// NewDrone creates a new Drone in the Available status.
// This is the only way to register a fresh drone, ensuring all invariants hold.
//
// Parameters:
//   - id: Unique identifier for the drone (must be valid UUID)
//   - shopID: Owning shop reference (must be valid UUID)
//   - model: Manufacturer model name (must be non-empty)
//   - serialNumber: Unique airframe serial (must be non-empty; uniqueness is
//     enforced by the fleet registry's storage)
//   - capacity: Payload limits (must be positive)
//   - battery: Battery state (constructed via NewBattery)
//   - specifications: Flight characteristics (must be positive)
//
// Returns:
//   - *Drone: The created drone if all validations pass
//   - error: Validation error if any parameter is invalid (aggregated)
func NewDrone(
	id kernel.UUID,
	shopID kernel.UUID,
	model string,
	serialNumber string,
	capacity Capacity,
	battery Battery,
	specifications Specifications,
) (*Drone, error) {
	d := &Drone{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setShopID(shopID),
		d.setModel(model),
		d.setSerialNumber(serialNumber),
		d.setCapacity(capacity),
		d.setBattery(battery),
		d.setSpecifications(specifications),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDrone reconstructs a Drone aggregate from persistent storage.
// Unlike NewDrone, which always starts drones in the Available status, this
// constructor restores the persisted status. The restored drone behaves
// identically to one created through normal domain operations.
func RestoreDrone(
	id kernel.UUID,
	shopID kernel.UUID,
	model string,
	serialNumber string,
	capacity Capacity,
	battery Battery,
	specifications Specifications,
	status Status,
) (*Drone, error) {
	d, err := NewDrone(id, shopID, model, serialNumber, capacity, battery, specifications)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	d.status = status

	return d, nil
}

// Validate ensures the Drone instance was properly constructed.
// Returns ErrDroneIsNotConstructed otherwise.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares two drones by their unique identifiers.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drone's unique identifier.
func (d *Drone) ID() kernel.UUID {
	return d.id
}

// ShopID returns the owning shop reference.
func (d *Drone) ShopID() kernel.UUID {
	return d.shopID
}

// Model returns the manufacturer model name.
func (d *Drone) Model() string {
	return d.model
}

// SerialNumber returns the immutable airframe serial number.
func (d *Drone) SerialNumber() string {
	return d.serialNumber
}

// Capacity returns the static payload limits.
func (d *Drone) Capacity() Capacity {
	return d.capacity
}

// Battery returns the current battery state.
func (d *Drone) Battery() Battery {
	return d.battery
}

// Specifications returns the static flight characteristics.
func (d *Drone) Specifications() Specifications {
	return d.specifications
}

// Status returns the current operational status.
func (d *Drone) Status() Status {
	return d.status
}

// ChangeStatus transitions the drone to the target status.
//
// Returns an *errs.InvalidTransitionError if the edge is not permitted,
// including any attempt to transition out of the terminal Retired status.
func (d *Drone) ChangeStatus(target Status) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// SetBatteryLevel records a reported battery charge level.
// Levels outside [0, maxCapacity] are rejected with a validation error.
//
// A low level while the drone is Busy does not change the status here;
// reacting to low battery is dispatch policy, not registry behavior.
func (d *Drone) SetBatteryLevel(level int) error {
	battery, err := d.battery.WithLevel(level)
	if err != nil {
		return err
	}

	d.battery = battery
	return nil
}

// CanCarry reports whether the drone's payload limit covers the given weight.
func (d *Drone) CanCarry(weightKg float64) bool {
	return weightKg <= d.capacity.WeightKg
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	d.shopID = shopID
	return nil
}

func (d *Drone) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	d.model = model
	return nil
}

func (d *Drone) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return ErrSerialNumberIsRequired
	}
	d.serialNumber = serialNumber
	return nil
}

func (d *Drone) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	d.capacity = capacity
	return nil
}

func (d *Drone) setBattery(battery Battery) error {
	if err := battery.Validate(); err != nil {
		return err
	}
	d.battery = battery
	return nil
}

func (d *Drone) setSpecifications(specifications Specifications) error {
	if err := specifications.Validate(); err != nil {
		return err
	}
	d.specifications = specifications
	return nil
}
