package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"

	"gorm.io/gorm"
)

// GetDroneStatusCountsQueryHandler aggregates fleet counts per status.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDroneStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetDroneStatusCountsQueryHandler creates a handler for fleet count queries.
// Requires a GORM database connection for query execution.
func NewGetDroneStatusCountsQueryHandler(db *gorm.DB) GetDroneStatusCountsQueryHandler {
	return GetDroneStatusCountsQueryHandler{db: db}
}

// Handle executes the fleet count aggregation.
// Every valid status is present in the result; statuses with no drones are
// zero, so gauges built from the result reset correctly when a status empties.
func (h GetDroneStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetDroneStatusCountsQuery,
) (map[drone.Status]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[drone.Status]int, len(drone.AllStatuses()))
	for _, status := range drone.AllStatuses() {
		counts[status] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM drones
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		counts[drone.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
