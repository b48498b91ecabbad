package drone

import (
	"dronedelivery/internal/pkg/errs"
)

// Status represents the operational state of a drone.
// It implements a state machine with defined transitions so that fleet state
// can only change along permitted edges.
//
// State transitions:
//
//	available ⇄ busy
//	available ⇄ maintenance
//	{available, busy, maintenance} → offline
//	offline → available
//	any non-terminal state → retired
//
// Retired is terminal: a retired drone never returns to service.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available indicates the drone is operational and ready for dispatch.
	Available

	// Busy indicates the drone is servicing an active delivery.
	Busy

	// Maintenance indicates the drone is undergoing scheduled or corrective service.
	Maintenance

	// Offline indicates the drone is powered down or out of contact.
	Offline

	// Retired indicates the drone is permanently withdrawn from the fleet.
	// This is a terminal state with no outgoing transitions.
	Retired
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Available:   "available",
		Busy:        "busy",
		Maintenance: "maintenance",
		Offline:     "offline",
		Retired:     "retired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "available",
		Busy:        "busy",
		Maintenance: "maintenance",
		Offline:     "offline",
		Retired:     "retired",
	}
}

// allowedTransitions defines every permitted status edge.
// Absence of an entry value means the status is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Available:   {Busy, Maintenance, Offline, Retired},
		Busy:        {Available, Offline, Retired},
		Maintenance: {Available, Offline, Retired},
		Offline:     {Available, Retired},
		Retired:     {},
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

// AllStatuses returns every valid drone status.
// The fleet metrics aggregator uses this to zero-fill gauges for statuses
// with no matching drones.
func AllStatuses() []Status {
	return []Status{Available, Busy, Maintenance, Offline, Retired}
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
	return s == Retired
}

// CanTransitionTo reports whether the edge from s to target is permitted.
// Transition legality is a pure function over the two status values.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the edge is permitted.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.InvalidTransitionError) if the edge is not permitted, including
//     any attempt to leave the terminal Retired status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError("drone", s.String(), target.String())
	}

	return target, nil
}
