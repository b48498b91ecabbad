package orderrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus saves the order only if its stored status still equals
// expected. Emits UPDATE ... WHERE id = ? AND status = ?; zero rows affected
// means a concurrent writer transitioned the order first, reported as
// ports.ErrOrderStatusChanged. Line items are immutable after creation, so
// only the orders row is touched.
func (r *GormOrderRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	updated := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if updated.Error != nil {
		return updated.Error
	}

	if updated.RowsAffected == 0 {
		return ports.ErrOrderStatusChanged
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByUser retrieves all orders placed by the given user, newest first.
func (r *GormOrderRepository) GetAllByUser(
	ctx context.Context,
	userID kernel.UUID,
) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAllByStatus retrieves all orders currently in the given status,
// oldest first so queue-style consumers process in arrival order.
func (r *GormOrderRepository) GetAllByStatus(
	ctx context.Context,
	status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", int(status)).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
