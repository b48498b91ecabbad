// Package dronerepo provides data transfer objects and mapping functions for drone persistence.
// This package implements the repository pattern for the drone domain aggregate, handling
// the conversion between domain entities and database representations.
package dronerepo

import (
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO represents the database structure for persisting drone aggregates.
// Maps drone domain entities to relational database tables. The serial number
// carries a unique index so duplicate registrations fail at the database level.
type DroneDTO struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ShopID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	Model          string            `gorm:"type:varchar(255);not null"`
	SerialNumber   string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	Capacity       CapacityDTO       `gorm:"embedded;embeddedPrefix:capacity_"`
	Battery        BatteryDTO        `gorm:"embedded;embeddedPrefix:battery_"`
	Specifications SpecificationsDTO `gorm:"embedded"`
	Status         int               `gorm:"not null;index"`
}

// TableName specifies the database table name for drone entities.
// Overrides GORM's default naming convention to use "drones".
func (DroneDTO) TableName() string {
	return "drones"
}

// CapacityDTO represents the embedded payload limits within the drone table.
type CapacityDTO struct {
	WeightKg  float64
	VolumeCm3 float64
}

// BatteryDTO represents the embedded battery state within the drone table.
type BatteryDTO struct {
	Current     int `gorm:"type:int;not null"`
	MaxCapacity int `gorm:"type:int;not null"`
}

// SpecificationsDTO represents the embedded flight characteristics within the drone table.
type SpecificationsDTO struct {
	MaxSpeedKmh   float64
	MaxAltitudeM  float64
	RangeKm       float64
	FlightTimeMin float64
}

// fromDomain converts a drone domain aggregate to its database representation.
func fromDomain(aggregate *drone.Drone) DroneDTO {
	return DroneDTO{
		ID:           aggregate.ID().Bytes(),
		ShopID:       aggregate.ShopID().Bytes(),
		Model:        aggregate.Model(),
		SerialNumber: aggregate.SerialNumber(),
		Capacity: CapacityDTO{
			WeightKg:  aggregate.Capacity().WeightKg,
			VolumeCm3: aggregate.Capacity().VolumeCm3,
		},
		Battery: BatteryDTO{
			Current:     aggregate.Battery().Current(),
			MaxCapacity: aggregate.Battery().MaxCapacity(),
		},
		Specifications: SpecificationsDTO{
			MaxSpeedKmh:   aggregate.Specifications().MaxSpeedKmh,
			MaxAltitudeM:  aggregate.Specifications().MaxAltitudeM,
			RangeKm:       aggregate.Specifications().RangeKm,
			FlightTimeMin: aggregate.Specifications().FlightTimeMin,
		},
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a drone domain aggregate.
// Reconstructs the complete aggregate including status using RestoreDrone.
func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	battery, err := drone.NewBattery(dto.Battery.Current, dto.Battery.MaxCapacity)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(
		id,
		shopID,
		dto.Model,
		dto.SerialNumber,
		drone.Capacity{
			WeightKg:  dto.Capacity.WeightKg,
			VolumeCm3: dto.Capacity.VolumeCm3,
		},
		battery,
		drone.Specifications{
			MaxSpeedKmh:   dto.Specifications.MaxSpeedKmh,
			MaxAltitudeM:  dto.Specifications.MaxAltitudeM,
			RangeKm:       dto.Specifications.RangeKm,
			FlightTimeMin: dto.Specifications.FlightTimeMin,
		},
		drone.Status(dto.Status),
	)
}
