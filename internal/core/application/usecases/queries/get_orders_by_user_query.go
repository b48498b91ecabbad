package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery retrieves the order history of a single user,
// most recent first.
type GetOrdersByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for a user's orders.
func NewGetOrdersByUserQuery(userID kernel.UUID) (GetOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return GetOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByUserQueryIsNotConstructed if validation fails.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the user whose orders are requested.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}

// OrderSummaryResponse represents order information in the read model.
// Shared by the user-history and status-filter queries.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	TotalAmount int64
	Status      string
	DroneID     *kernel.UUID
}
