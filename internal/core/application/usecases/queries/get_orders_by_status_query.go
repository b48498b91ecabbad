package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves every order currently in a given status.
// Used by shop staff views (confirmed, preparing) and dispatch monitoring
// (out_for_delivery).
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}
