package order

import (
	"dronedelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending → confirmed → preparing → out_for_delivery → delivered
//	   │          │           │              │
//	   └──────────┴───────────┴──────────────┴──> cancelled
//
// Progression is forward-only and single-step; cancelled is reachable from any
// non-terminal state. Delivered and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the order has been accepted by the shop.
	Confirmed

	// Preparing indicates the order items are being prepared for dispatch.
	Preparing

	// OutForDelivery indicates the order is in flight, bound to a drone.
	OutForDelivery

	// Delivered indicates the order reached its destination.
	// This is a terminal state with no further transitions.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// This is a terminal state with no further transitions.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
// Returns an error for unrecognized status strings.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// AllStatuses returns every valid order status in progression order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the edge from s to target is permitted.
// Transition legality is a pure function over the two status values: one
// forward step along the progression, or cancellation from any non-terminal
// state. Regressions and step-skipping are never permitted.
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() {
		return false
	}

	if target == Cancelled {
		return true
	}

	switch s {
	case Pending:
		return target == Confirmed
	case Confirmed:
		return target == Preparing
	case Preparing:
		return target == OutForDelivery
	case OutForDelivery:
		return target == Delivered
	default:
		return false
	}
}

// TransitionTo returns the target status if the edge is permitted.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.InvalidTransitionError) for regressions, step-skipping, or any
//     mutation of a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}

	return target, nil
}

// ValidateCanHaveDrone validates the consistency between order status and drone
// assignment. An order references a drone exactly while it is out for delivery;
// the binding is cleared on completion or cancellation.
func (s Status) ValidateCanHaveDrone(hasDrone bool) error {
	if hasDrone && s != OutForDelivery {
		return errs.NewValueIsInvalidError("droneId")
	}

	if !hasDrone && s == OutForDelivery {
		return errs.NewValueIsRequiredError("droneId")
	}

	return nil
}
