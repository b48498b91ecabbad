package ports

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// ErrOrderStatusChanged is returned by UpdateIfStatus when the order's stored
// status no longer matches the expected value, meaning a concurrent operation
// transitioned the order first. The caller's transition was computed from a
// stale read and must not be applied.
var ErrOrderStatusChanged = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists the aggregate only if its stored status still
	// equals expected — a compare-and-swap on the status column, mirroring
	// DroneRepository.UpdateIfStatus. Returns ErrOrderStatusChanged when
	// another writer transitioned the order first. Every post-creation order
	// write is a status transition, so this is the only update the contract
	// offers; there is no unconditional save to lose updates through.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByUser retrieves all orders placed by the given user,
	// most recent first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAllByStatus retrieves all orders currently in the given status.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
