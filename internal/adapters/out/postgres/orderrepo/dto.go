// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by user, status, and drone assignment.
type OrderDTO struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	DroneID     *uuid.UUID         `gorm:"type:uuid;index"`
	TotalAmount int64              `gorm:"not null"`
	Delivery    DeliveryAddressDTO `gorm:"embedded"`
	Contact     ContactInfoDTO     `gorm:"embedded;embeddedPrefix:contact_"`
	Status      int                `gorm:"not null;index"`
	Items       []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryAddressDTO represents the embedded destination snapshot within the order table.
type DeliveryAddressDTO struct {
	Address string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(255);not null"`
	State   string `gorm:"type:varchar(255);not null"`
	Lat     float64
	Lng     float64
}

// ContactInfoDTO represents the embedded recipient snapshot within the order table.
type ContactInfoDTO struct {
	Name  string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(64);not null"`
	Email string `gorm:"type:varchar(255);not null"`
}

// OrderItemDTO represents the database structure for persisting order line items.
// Lines are owned by their order and carry the denormalized item and shop
// snapshots taken at order time.
type OrderItemDTO struct {
	OrderID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"type:varchar(255);not null"`
	ImageURL string     `gorm:"type:varchar(512)"`
	Category string     `gorm:"type:varchar(255)"`
	FoodType string     `gorm:"type:varchar(255)"`
	Shop     ShopRefDTO `gorm:"embedded;embeddedPrefix:shop_"`
	Quantity int        `gorm:"not null"`
	Price    int64      `gorm:"not null"`
	Subtotal int64      `gorm:"not null"`
	WeightKg float64
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ShopRefDTO represents the embedded shop snapshot within the order_items table.
type ShopRefDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;not null"`
	Name    string    `gorm:"type:varchar(255);not null"`
	City    string    `gorm:"type:varchar(255)"`
	State   string    `gorm:"type:varchar(255)"`
	Address string    `gorm:"type:varchar(255)"`
	OwnerID uuid.UUID `gorm:"type:uuid"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including line items and the optional drone assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var droneID *uuid.UUID
	if id := aggregate.Drone(); id != nil {
		raw := id.Bytes()
		droneID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  orderID,
			ItemID:   item.ItemID().Bytes(),
			Name:     item.Name(),
			ImageURL: item.ImageURL(),
			Category: item.Category(),
			FoodType: item.FoodType(),
			Shop: ShopRefDTO{
				ID:      item.Shop().ID.Bytes(),
				Name:    item.Shop().Name,
				City:    item.Shop().City,
				State:   item.Shop().State,
				Address: item.Shop().Address,
				OwnerID: item.Shop().OwnerID.Bytes(),
			},
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Subtotal: item.Subtotal(),
			WeightKg: item.WeightKg(),
		})
	}

	address := aggregate.DeliveryAddress()
	contact := aggregate.ContactInfo()

	return OrderDTO{
		ID:          orderID,
		UserID:      aggregate.UserID().Bytes(),
		DroneID:     droneID,
		TotalAmount: aggregate.TotalAmount(),
		Delivery: DeliveryAddressDTO{
			Address: address.Address(),
			City:    address.City(),
			State:   address.State(),
			Lat:     address.Location().Lat(),
			Lng:     address.Location().Lng(),
		},
		Contact: ContactInfoDTO{
			Name:  contact.Name(),
			Phone: contact.Phone(),
			Email: contact.Email(),
		},
		Status: int(aggregate.Status()),
		Items:  items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, snapshots, status,
// and drone assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var droneID *kernel.UUID
	if dto.DroneID != nil {
		dID, droneErr := kernel.UUIDFromBytes((*dto.DroneID)[:])
		if droneErr != nil {
			return nil, droneErr
		}
		droneID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	location, err := kernel.NewGeoLocation(dto.Delivery.Lat, dto.Delivery.Lng)
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(
		dto.Delivery.Address, dto.Delivery.City, dto.Delivery.State, location)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewContactInfo(dto.Contact.Name, dto.Contact.Phone, dto.Contact.Email)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		dto.TotalAmount,
		address,
		contact,
		order.Status(dto.Status),
		droneID,
	)
}

// itemToDomain converts a line item DTO to a domain value object.
func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.Shop.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	// OwnerID is informational and may be absent in older rows.
	var ownerID kernel.UUID
	if dto.Shop.OwnerID != uuid.Nil {
		ownerID, err = kernel.UUIDFromBytes(dto.Shop.OwnerID[:])
		if err != nil {
			return order.Item{}, err
		}
	}

	return order.NewItem(
		itemID,
		dto.Name,
		dto.ImageURL,
		dto.Category,
		dto.FoodType,
		order.ShopRef{
			ID:      shopID,
			Name:    dto.Shop.Name,
			City:    dto.Shop.City,
			State:   dto.Shop.State,
			Address: dto.Shop.Address,
			OwnerID: ownerID,
		},
		dto.Quantity,
		dto.Price,
		dto.Subtotal,
		dto.WeightKg,
	)
}
