package services

import (
	"errors"
	"sort"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/order"
)

// ErrNoEligibleDrone is returned when no drone can service the given order.
// This occurs when no drones are provided, or none of them are available with
// sufficient battery charge and payload capacity.
var ErrNoEligibleDrone = errors.New("no eligible drone")

// DroneSelector is a domain service that ranks available drones for order
// dispatch.
//
// Selection policy (deterministic):
//  1. Only drones in the Available status are considered.
//  2. Drones below the operational battery floor are excluded.
//  3. Drones whose payload limit does not cover the order's aggregate item
//     weight are excluded (orders without tracked weights match any drone).
//  4. Ranking is highest battery percentage first; ties break by serial
//     number ascending, so selection never depends on storage order.
//
// The selector is pure: it ranks candidates but performs no state transitions.
// The dispatch command handler owns the coupled order/drone transition and its
// concurrency discipline.
type DroneSelector struct {
	// minBatteryPercent is the operational floor below which a drone is not dispatched
	minBatteryPercent float64
}

// NewDroneSelector creates a DroneSelector with the given operational battery
// floor in percent. A floor of 0 disables the battery exclusion.
func NewDroneSelector(minBatteryPercent float64) DroneSelector {
	return DroneSelector{minBatteryPercent: minBatteryPercent}
}

// Rank returns the eligible drones for the order in dispatch preference order.
//
// Returns:
//   - []*drone.Drone: Candidates ranked per the selection policy
//   - error: ErrNoEligibleDrone if no drone qualifies, or validation errors
//
// Callers attempt candidates in order; a candidate lost to a concurrent
// assignment is skipped in favor of the next one.
func (s DroneSelector) Rank(o *order.Order, drones []*drone.Drone) ([]*drone.Drone, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	weight := o.TotalWeightKg()

	eligible := make([]*drone.Drone, 0, len(drones))
	for _, d := range drones {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		if d.Status() != drone.Available {
			continue
		}
		if d.Battery().Percent() < s.minBatteryPercent {
			continue
		}
		if weight > 0 && !d.CanCarry(weight) {
			continue
		}

		eligible = append(eligible, d)
	}

	if len(eligible) == 0 {
		return nil, ErrNoEligibleDrone
	}

	sort.Slice(eligible, func(i, j int) bool {
		pi, pj := eligible[i].Battery().Percent(), eligible[j].Battery().Percent()
		if pi != pj {
			return pi > pj
		}
		return eligible[i].SerialNumber() < eligible[j].SerialNumber()
	})

	return eligible, nil
}
