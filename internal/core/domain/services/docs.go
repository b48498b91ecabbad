// Package services contains domain services that coordinate behavior across
// aggregates.
//
// DroneSelector implements the dispatch candidate selection policy: it ranks
// available drones for an order by battery charge with a deterministic
// serial-number tie-break, excluding drones below the operational battery
// floor or without sufficient payload capacity. The selector is pure; the
// coupled order/drone state transition lives in the dispatch command handlers.
package services
