// Package ports defines repository interfaces for the drone delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
)

// ErrDroneStatusChanged is returned by UpdateIfStatus when the drone's stored
// status no longer matches the expected value, meaning a concurrent operation
// transitioned the drone first. Callers treat the drone as lost to the race
// and move on to another candidate.
var ErrDroneStatusChanged = errors.New("drone status changed concurrently")

// DroneRepository defines the persistence contract for drone aggregates.
// Provides methods for storing, retrieving, and querying fleet state.
type DroneRepository interface {
	// Add persists a new drone aggregate to storage.
	// A duplicate serial number fails with *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone aggregate.
	// The drone must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// UpdateIfStatus persists the aggregate only if its stored status still
	// equals expected — a compare-and-swap on the status column. Returns
	// ErrDroneStatusChanged when another writer got there first. This is the
	// serialization point that keeps "drone is busy" and "drone is bound to
	// exactly one order" from diverging under concurrent dispatch.
	UpdateIfStatus(ctx context.Context, aggregate *drone.Drone, expected drone.Status) error

	// Get retrieves a drone aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetAllAvailable retrieves all drones in the Available status,
	// optionally filtered by owning shop (nil means all shops).
	GetAllAvailable(ctx context.Context, shopID *kernel.UUID) ([]*drone.Drone, error)
}
