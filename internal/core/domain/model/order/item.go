package order

import (
	"errors"
	"fmt"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Item errors.
var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrSubtotalMismatch is returned when an item's reported subtotal does not
	// equal quantity × price. The mismatch is reported, never silently
	// recomputed, so client/server disagreements surface immediately.
	ErrSubtotalMismatch = errs.NewValueIsInvalidError("subtotal")
)

// ShopRef carries the denormalized shop fields snapshotted onto an order item.
// The snapshot survives later changes to the shop record.
type ShopRef struct {
	ID      kernel.UUID
	Name    string
	City    string
	State   string
	Address string
	OwnerID kernel.UUID
}

// Item is a single order line: an item reference with quantity, unit price,
// and the reported subtotal, plus denormalized descriptive fields.
//
// Invariant: subtotal = quantity × price. Prices are integer currency units
// (no fractional amounts), so the comparison is exact.
type Item struct {
	// itemID references the catalog item
	itemID kernel.UUID
	// name is the item's display name at order time
	name string
	// imageURL, category, and foodType are descriptive snapshots
	imageURL string
	category string
	foodType string
	// shop is the denormalized owning shop snapshot
	shop ShopRef
	// quantity is the ordered count (must be positive)
	quantity int
	// price is the unit price in integer currency units
	price int64
	// subtotal is the reported line total, validated against quantity × price
	subtotal int64
	// weightKg is the line's payload weight; zero means untracked
	weightKg float64
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates an order line item with validation.
//
// Validation rules:
//   - itemID and shop.ID must be valid UUIDs
//   - name must be non-empty
//   - quantity must be positive
//   - price must be non-negative
//   - subtotal must equal quantity × price exactly (reported, not recomputed)
//   - weightKg must be non-negative (zero means weight is not tracked)
func NewItem(
	itemID kernel.UUID,
	name string,
	imageURL string,
	category string,
	foodType string,
	shop ShopRef,
	quantity int,
	price int64,
	subtotal int64,
	weightKg float64,
) (Item, error) {
	item := Item{
		imageURL: imageURL,
		category: category,
		foodType: foodType,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setName(name),
		item.setShop(shop),
		item.setQuantity(quantity),
		item.setPrice(price),
		item.setWeightKg(weightKg),
	); err != nil {
		return Item{}, err
	}

	if err := item.setSubtotal(subtotal); err != nil {
		return Item{}, err
	}

	return item, nil
}

// ItemID returns the catalog item reference.
func (i Item) ItemID() kernel.UUID {
	return i.itemID
}

// Name returns the item's display name snapshot.
func (i Item) Name() string {
	return i.name
}

// ImageURL returns the item's image snapshot.
func (i Item) ImageURL() string {
	return i.imageURL
}

// Category returns the item's category snapshot.
func (i Item) Category() string {
	return i.category
}

// FoodType returns the item's food type snapshot.
func (i Item) FoodType() string {
	return i.foodType
}

// Shop returns the denormalized shop snapshot.
func (i Item) Shop() ShopRef {
	return i.shop
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price in integer currency units.
func (i Item) Price() int64 {
	return i.price
}

// Subtotal returns the validated line total.
func (i Item) Subtotal() int64 {
	return i.subtotal
}

// WeightKg returns the line's payload weight; zero means untracked.
func (i Item) WeightKg() float64 {
	return i.weightKg
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	i.itemID = itemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setShop(shop ShopRef) error {
	if err := shop.ID.Validate(); err != nil {
		return err
	}
	if shop.Name == "" {
		return errs.NewValueIsRequiredError("shop name")
	}
	i.shop = shop
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	i.weightKg = weightKg
	return nil
}

func (i *Item) setSubtotal(subtotal int64) error {
	if subtotal != int64(i.quantity)*i.price {
		return ErrSubtotalMismatch
	}
	i.subtotal = subtotal
	return nil
}
