// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetAvailableDronesQueryIsNotConstructed = errors.New(
	"GetAvailableDronesQuery must be created via NewGetAvailableDronesQuery constructor",
)

// GetAvailableDronesQuery retrieves the dispatchable part of the fleet,
// optionally scoped to a single shop.
//
// Example:
//
//	query, _ := NewGetAvailableDronesQuery(nil) // whole fleet
//	handler := NewGetAvailableDronesQueryHandler(db)
//
//	drones, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drones: %w", err)
//	}
//
//	for _, d := range drones {
//	    fmt.Printf("%s (%s) battery %d/%d\n", d.SerialNumber, d.Model,
//	        d.BatteryCurrent, d.BatteryMaxCapacity)
//	}
type GetAvailableDronesQuery struct {
	shopID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableDronesQuery creates a query for available drones.
// A nil shopID means drones of every shop are returned.
func NewGetAvailableDronesQuery(shopID *kernel.UUID) (GetAvailableDronesQuery, error) {
	if shopID != nil {
		if err := shopID.Validate(); err != nil {
			return GetAvailableDronesQuery{}, err
		}
	}

	return GetAvailableDronesQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableDronesQueryIsNotConstructed if validation fails.
func (q GetAvailableDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDronesQueryIsNotConstructed)
}

// ShopID returns the optional shop filter; nil means no filter.
func (q GetAvailableDronesQuery) ShopID() *kernel.UUID {
	return q.shopID
}

// GetAvailableDronesQueryResponse represents drone information in the read model.
// Contains the identity and capability data needed for fleet dashboards.
type GetAvailableDronesQueryResponse struct {
	ID                 kernel.UUID
	ShopID             kernel.UUID
	Model              string
	SerialNumber       string
	BatteryCurrent     int
	BatteryMaxCapacity int
	CapacityWeightKg   float64
}
