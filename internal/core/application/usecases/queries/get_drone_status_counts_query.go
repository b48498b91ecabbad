package queries

import (
	"errors"

	"dronedelivery/internal/pkg/guard"
)

var ErrGetDroneStatusCountsQueryIsNotConstructed = errors.New(
	"GetDroneStatusCountsQuery must be created via NewGetDroneStatusCountsQuery constructor",
)

// GetDroneStatusCountsQuery retrieves the fleet composition: how many drones
// are in each status. Feeds the fleet gauges exported for monitoring.
type GetDroneStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDroneStatusCountsQuery creates a query for per-status fleet counts.
// This is a parameterless query covering the whole fleet.
func NewGetDroneStatusCountsQuery() GetDroneStatusCountsQuery {
	return GetDroneStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDroneStatusCountsQueryIsNotConstructed if validation fails.
func (q GetDroneStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneStatusCountsQueryIsNotConstructed)
}
