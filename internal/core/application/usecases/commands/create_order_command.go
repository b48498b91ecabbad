package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to place a new delivery order.
// Carries the buyer reference, the line items, the reported total, and the
// delivery/contact snapshots. The total is checked against the sum of line
// subtotals by the order aggregate, never recomputed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, items, 125000, deliveryAddress, contactInfo)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting confirmation", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	items           []order.Item
	totalAmount     int64
	deliveryAddress order.DeliveryAddress
	contactInfo     order.ContactInfo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new delivery order.
// Automatically generates a unique ID for the order. Items, the delivery
// address, and the contact snapshot must already be constructed through their
// domain constructors; the totalAmount consistency check happens in the order
// aggregate.
func NewCreateOrderCommand(
	userID kernel.UUID,
	items []order.Item,
	totalAmount int64,
	deliveryAddress order.DeliveryAddress,
	contactInfo order.ContactInfo,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setUserID(userID),
		command.setItems(items),
		command.setDeliveryAddress(deliveryAddress),
		command.setContactInfo(contactInfo),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID from the command.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the buyer reference from the command.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the order line items from the command.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// TotalAmount returns the reported order total from the command.
func (c CreateOrderCommand) TotalAmount() int64 {
	return c.totalAmount
}

// DeliveryAddress returns the destination snapshot from the command.
func (c CreateOrderCommand) DeliveryAddress() order.DeliveryAddress {
	return c.deliveryAddress
}

// ContactInfo returns the recipient snapshot from the command.
func (c CreateOrderCommand) ContactInfo() order.ContactInfo {
	return c.contactInfo
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress order.DeliveryAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setContactInfo(contactInfo order.ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}

	c.contactInfo = contactInfo
	return nil
}
