package dronerepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDroneRepository implements DroneRepository using GORM.
type GormDroneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDroneRepository creates a new GORM drone repository.
func NewGormDroneRepository(db *gorm.DB, tracker aggregateTracker) *GormDroneRepository {
	return &GormDroneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new drone to the database.
// A duplicate serial number violates the unique index and is reported as
// *errs.ObjectAlreadyExistsError. Requires the connection to be opened with
// TranslateError so the driver surfaces gorm.ErrDuplicatedKey.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"serialNumber", aggregate.SerialNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing drone to the database.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus saves the drone only if its stored status still equals expected.
// Emits UPDATE ... WHERE id = ? AND status = ?; zero rows affected means a
// concurrent writer transitioned the drone first, reported as
// ports.ErrDroneStatusChanged. This is the claim/release primitive that keeps
// concurrent dispatches from double-booking a drone.
func (r *GormDroneRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *drone.Drone,
	expected drone.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrDroneStatusChanged
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a drone by ID.
func (r *GormDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DroneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all drones in the Available status,
// optionally restricted to one shop.
func (r *GormDroneRepository) GetAllAvailable(
	ctx context.Context,
	shopID *kernel.UUID,
) ([]*drone.Drone, error) {
	query := r.db.WithContext(ctx).Where("status = ?", int(drone.Available))
	if shopID != nil {
		query = query.Where("shop_id = ?", shopID.Bytes())
	}

	var dtos []DroneDTO
	if err := query.Order("serial_number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}

	return drones, nil
}
