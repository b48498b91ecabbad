package order

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Delivery detail errors.
var (
	// ErrAddressIsNotConstructed is returned when using an improperly initialized DeliveryAddress.
	ErrAddressIsNotConstructed = errors.New(
		"DeliveryAddress must be created via NewDeliveryAddress constructor")
	// ErrContactIsNotConstructed is returned when using an improperly initialized ContactInfo.
	ErrContactIsNotConstructed = errors.New(
		"ContactInfo must be created via NewContactInfo constructor")
)

// DeliveryAddress is the structured destination of an order: a street address
// with city/state and validated coordinates for drone navigation handoff.
type DeliveryAddress struct {
	// address is the street address line
	address string
	// city and state locate the address administratively
	city  string
	state string
	// location holds the validated destination coordinates
	location kernel.GeoLocation
	// guard ensures the address was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryAddress creates a delivery address with validation.
// The street address must be non-empty and the location must be a constructed
// GeoLocation; city and state are informational.
func NewDeliveryAddress(address, city, state string, location kernel.GeoLocation) (DeliveryAddress, error) {
	a := DeliveryAddress{
		city:  city,
		state: state,
		guard: guard.NewConstructorGuard(),
	}

	if address == "" {
		return DeliveryAddress{}, errs.NewValueIsRequiredError("delivery address")
	}
	a.address = address

	if err := location.Validate(); err != nil {
		return DeliveryAddress{}, err
	}
	a.location = location

	return a, nil
}

// Address returns the street address line.
func (a DeliveryAddress) Address() string {
	return a.address
}

// City returns the city name.
func (a DeliveryAddress) City() string {
	return a.city
}

// State returns the state or province name.
func (a DeliveryAddress) State() string {
	return a.state
}

// Location returns the destination coordinates.
func (a DeliveryAddress) Location() kernel.GeoLocation {
	return a.location
}

// Validate ensures the DeliveryAddress was created through NewDeliveryAddress.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ContactInfo is a snapshot of the recipient's contact details at order time.
// It is deliberately not a live user reference: the snapshot survives later
// changes to the user profile.
type ContactInfo struct {
	name  string
	phone string
	email string
	guard guard.ConstructorGuard
}

// NewContactInfo creates a contact snapshot with validation.
// Name, phone, and email are all required.
func NewContactInfo(name, phone, email string) (ContactInfo, error) {
	if name == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contact name")
	}
	if phone == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contact phone")
	}
	if email == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contact email")
	}

	return ContactInfo{
		name:  name,
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the recipient name snapshot.
func (c ContactInfo) Name() string {
	return c.name
}

// Phone returns the recipient phone snapshot.
func (c ContactInfo) Phone() string {
	return c.phone
}

// Email returns the recipient email snapshot.
func (c ContactInfo) Email() string {
	return c.email
}

// Validate ensures the ContactInfo was created through NewContactInfo.
func (c ContactInfo) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}
