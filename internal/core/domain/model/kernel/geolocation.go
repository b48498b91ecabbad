package kernel

import (
	"fmt"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid WGS84 latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid WGS84 latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid WGS84 longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid WGS84 longitude in degrees.
	LongitudeMax = 180.0
)

// ErrGeoLocationIsNotConstructed is returned when attempting to use an improperly
// initialized GeoLocation. GeoLocations must be created using the NewGeoLocation
// constructor to ensure validity.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geo location must be created via NewGeoLocation constructor")

// GeoLocation represents a point on the Earth with validated WGS84 coordinates.
// It is an immutable value object used for delivery destinations and drone
// telemetry. The zero value of GeoLocation is invalid and will fail validation;
// use NewGeoLocation to create instances.
//
// Example:
//
//	loc, err := kernel.NewGeoLocation(10.762622, 106.660172)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: GeoLocation(10.762622,106.660172)
type GeoLocation struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoLocation creates a new GeoLocation with the specified coordinates.
// Latitude must be within [LatitudeMin, LatitudeMax] degrees and longitude
// within [LongitudeMin, LongitudeMax] degrees.
//
// Returns:
//   - GeoLocation: A valid location instance
//   - error: Validation error if either coordinate is outside its bounds
func NewGeoLocation(lat float64, lng float64) (GeoLocation, error) {
	loc := GeoLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setLat(lat); err != nil {
		return GeoLocation{}, err
	}
	if err := loc.setLng(lng); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// Lat returns the latitude in degrees.
func (l GeoLocation) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l GeoLocation) Lng() float64 {
	return l.lng
}

// IsEqual compares two locations by their coordinates.
func (l GeoLocation) IsEqual(other GeoLocation) bool {
	return l.lat == other.lat && l.lng == other.lng
}

// String returns a human-readable representation of the location.
func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%f,%f)", l.lat, l.lng)
}

// Validate ensures the GeoLocation was created through NewGeoLocation.
// Returns ErrGeoLocationIsNotConstructed for zero-value instances.
func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

func (l *GeoLocation) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	l.lat = lat
	return nil
}

func (l *GeoLocation) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	l.lng = lng
	return nil
}
