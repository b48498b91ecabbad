package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByUserQueryHandler retrieves a user's order history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for user order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle executes the query to retrieve the user's orders, newest first.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			total_amount,
			status,
			drone_id
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries maps order rows to the shared summary read model.
// The rows must carry id, user_id, total_amount, status, drone_id in that order.
func scanOrderSummaries(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var resp OrderSummaryResponse
		var id, userID uuid.UUID
		var status int
		var droneID uuid.NullUUID

		if err := rows.Scan(&id, &userID, &resp.TotalAmount, &status, &droneID); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = orderID

		buyerID, err := kernel.UUIDFromBytes(userID[:])
		if err != nil {
			return nil, err
		}
		resp.UserID = buyerID

		resp.Status = order.Status(status).String()

		if droneID.Valid {
			assignedID, idErr := kernel.UUIDFromBytes(droneID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DroneID = &assignedID
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
