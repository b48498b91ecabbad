package order

import (
	"errors"
	"fmt"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Order errors.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through a constructor. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("orderItems")
	// ErrTotalAmountMismatch is returned when the reported totalAmount does not
	// equal the sum of validated line subtotals. The mismatch is reported, never
	// silently recomputed.
	ErrTotalAmountMismatch = errs.NewValueIsInvalidError("totalAmount")
)

// Order represents a delivery order. It is the aggregate root that manages the
// order lifecycle from creation through dispatch to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning user reference
//   - Has at least one line item; every item's subtotal equals quantity × price
//   - totalAmount equals the sum of line subtotals, validated at construction
//   - Status transitions are forward-only with cancellation from any
//     non-terminal state; terminal orders are immutable
//   - References a drone exactly while out_for_delivery (the assignment
//     relation), cleared on completion or cancellation
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the user who placed the order
	userID kernel.UUID

	// items are the order lines in the sequence the client submitted them
	items []Item

	// totalAmount is the validated order total in integer currency units
	totalAmount int64

	// deliveryAddress is the structured destination
	deliveryAddress DeliveryAddress

	// contactInfo is the recipient snapshot taken at order time
	contactInfo ContactInfo

	// status is the current state in the order lifecycle
	status Status

	// droneID is the assigned drone while out_for_delivery (nil otherwise)
	droneID *kernel.UUID

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the Pending status with validation.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - userID: Owning user reference (must be valid UUID)
//   - items: Line items (at least one, each constructed via NewItem)
//   - totalAmount: Reported order total; must equal the sum of line subtotals
//     exactly — currency amounts are integer units, so no epsilon applies
//   - deliveryAddress: Structured destination (constructed via NewDeliveryAddress)
//   - contactInfo: Recipient snapshot (constructed via NewContactInfo)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error identifying the violated field otherwise
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	totalAmount int64,
	deliveryAddress DeliveryAddress,
	contactInfo ContactInfo,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setContactInfo(contactInfo),
	); err != nil {
		return nil, err
	}

	if err := o.setTotalAmount(totalAmount); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts orders in the Pending status, this
// constructor restores the persisted status and drone assignment, validating
// their consistency (a drone reference is only permitted while
// out_for_delivery).
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	totalAmount int64,
	deliveryAddress DeliveryAddress,
	contactInfo ContactInfo,
	status Status,
	droneID *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, userID, items, totalAmount, deliveryAddress, contactInfo)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDrone(droneID != nil); err != nil {
		return nil, err
	}
	if droneID != nil {
		if err := droneID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.droneID = droneID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user reference.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// TotalAmount returns the validated order total in integer currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// DeliveryAddress returns the structured destination.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// ContactInfo returns the recipient snapshot.
func (o *Order) ContactInfo() ContactInfo {
	return o.contactInfo
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Drone returns the assigned drone's ID, or nil outside out_for_delivery.
func (o *Order) Drone() *kernel.UUID {
	return o.droneID
}

// TotalWeightKg returns the aggregate payload weight across all line items.
// Returns zero when no item tracks a weight.
func (o *Order) TotalWeightKg() float64 {
	var total float64
	for _, item := range o.items {
		total += item.WeightKg() * float64(item.Quantity())
	}
	return total
}

// ChangeStatus moves the order one step forward along the lifecycle.
// Dispatch-coupled transitions must go through AssignDrone, CompleteDelivery,
// or Cancel so the drone binding stays consistent with the status;
// ChangeStatus rejects those edges with an *errs.InvalidTransitionError.
func (o *Order) ChangeStatus(target Status) error {
	if target == OutForDelivery || target == Delivered || target == Cancelled {
		return errs.NewInvalidTransitionErrorWithCause("order",
			o.status.String(), target.String(),
			fmt.Errorf("%s transition is managed by dispatch", target))
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDrone binds the order to a drone and moves it to OutForDelivery.
//
// Business rules:
//   - The drone ID must be valid
//   - The order must be in Preparing status (the only state from which
//     out_for_delivery is reachable)
func (o *Order) AssignDrone(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(OutForDelivery)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.droneID = &droneID
	return nil
}

// CompleteDelivery marks the order as delivered and clears the drone binding.
// Returns an *errs.InvalidTransitionError if the order is not out_for_delivery.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.droneID = nil
	return nil
}

// Cancel abandons the order and clears any drone binding.
//
// Cancelling an already-cancelled order is a no-op success; cancelling a
// delivered order fails with an *errs.InvalidTransitionError. Cancellation is
// reachable from every non-terminal state.
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return nil
	}

	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.droneID = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress DeliveryAddress) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setContactInfo(contactInfo ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}
	o.contactInfo = contactInfo
	return nil
}

func (o *Order) setTotalAmount(totalAmount int64) error {
	var sum int64
	for _, item := range o.items {
		sum += item.Subtotal()
	}

	if totalAmount != sum {
		return ErrTotalAmountMismatch
	}

	o.totalAmount = totalAmount
	return nil
}
