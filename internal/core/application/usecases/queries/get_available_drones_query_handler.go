package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDronesQueryHandler retrieves available drones from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAvailableDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDronesQueryHandler creates a handler for available drone queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableDronesQueryHandler(db *gorm.DB) GetAvailableDronesQueryHandler {
	return GetAvailableDronesQueryHandler{db: db}
}

// Handle executes the query to retrieve available drones.
// Returns a slice of drone read models sorted by serial number, optionally
// restricted to one shop.
func (h GetAvailableDronesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDronesQuery,
) ([]GetAvailableDronesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			shop_id,
			model,
			serial_number,
			battery_current,
			battery_max_capacity,
			capacity_weight_kg
		FROM drones
		WHERE status = ?
	`
	args := []any{int(drone.Available)}

	if query.ShopID() != nil {
		sql += " AND shop_id = ?"
		args = append(args, query.ShopID().Bytes())
	}
	sql += " ORDER BY serial_number"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drones := make([]GetAvailableDronesQueryResponse, 0)

	for rows.Next() {
		var resp GetAvailableDronesQueryResponse
		var id, shopID uuid.UUID

		err = rows.Scan(
			&id,
			&shopID,
			&resp.Model,
			&resp.SerialNumber,
			&resp.BatteryCurrent,
			&resp.BatteryMaxCapacity,
			&resp.CapacityWeightKg,
		)
		if err != nil {
			return nil, err
		}

		droneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = droneID

		ownerID, idErr := kernel.UUIDFromBytes(shopID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ShopID = ownerID

		drones = append(drones, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drones, nil
}
