package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves orders in a given status from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query to retrieve orders in the requested status.
// Results are sorted oldest first so queue-style views process in arrival order.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
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
		WHERE status = ?
		ORDER BY created_at
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
