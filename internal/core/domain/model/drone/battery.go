package drone

import (
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrBatteryIsNotConstructed is returned when using an improperly initialized Battery.
var ErrBatteryIsNotConstructed = errs.NewValueIsRequiredError(
	"battery must be created via NewBattery constructor")

// Battery is a value object describing a drone's battery state.
//
// Invariant: 0 ≤ current ≤ maxCapacity at all times. Any level outside these
// bounds is rejected at construction and on every level change, so an invalid
// battery state is unrepresentable.
type Battery struct {
	// current is the present charge level in capacity units
	current int
	// maxCapacity is the battery's full charge capacity (must be positive)
	maxCapacity int
	// guard ensures the battery was properly constructed
	guard guard.ConstructorGuard
}

// NewBattery creates a Battery with the given charge level and capacity.
//
// Returns an error if maxCapacity is not positive or current is outside
// [0, maxCapacity].
func NewBattery(current int, maxCapacity int) (Battery, error) {
	if maxCapacity <= 0 {
		return Battery{}, errs.NewValueIsRequiredError("battery maxCapacity")
	}
	if current < 0 || current > maxCapacity {
		return Battery{}, errs.NewValueIsOutOfRangeError("battery current", current, 0, maxCapacity)
	}

	return Battery{
		current:     current,
		maxCapacity: maxCapacity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Current returns the present charge level.
func (b Battery) Current() int {
	return b.current
}

// MaxCapacity returns the full charge capacity.
func (b Battery) MaxCapacity() int {
	return b.maxCapacity
}

// Percent returns the charge level as a fraction of capacity in [0, 100].
func (b Battery) Percent() float64 {
	return float64(b.current) / float64(b.maxCapacity) * 100
}

// WithLevel returns a copy of the battery at the given charge level.
// The level must be within [0, maxCapacity]; out-of-range levels are rejected,
// never clamped, so client/firmware mismatches surface as errors.
func (b Battery) WithLevel(level int) (Battery, error) {
	if err := b.Validate(); err != nil {
		return Battery{}, err
	}
	if level < 0 || level > b.maxCapacity {
		return Battery{}, errs.NewValueIsOutOfRangeError("battery current", level, 0, b.maxCapacity)
	}

	next := b
	next.current = level
	return next, nil
}

// Validate ensures the Battery was created through NewBattery.
func (b Battery) Validate() error {
	return b.guard.Validate(ErrBatteryIsNotConstructed)
}
