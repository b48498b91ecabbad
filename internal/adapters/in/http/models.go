package http

// Request and response bodies for the REST API. These are wire-level shapes;
// all validation happens in the domain constructors they feed.

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created reports the server-generated identifier of a newly created resource.
type Created struct {
	ID string `json:"id"`
}

// CapacityPayload mirrors drone.Capacity on the wire.
type CapacityPayload struct {
	WeightKg  float64 `json:"weightKg"`
	VolumeCm3 float64 `json:"volumeCm3"`
}

// BatteryPayload mirrors drone.Battery on the wire.
type BatteryPayload struct {
	Current     int `json:"current"`
	MaxCapacity int `json:"maxCapacity"`
}

// SpecificationsPayload mirrors drone.Specifications on the wire.
type SpecificationsPayload struct {
	MaxSpeedKmh   float64 `json:"maxSpeedKmh"`
	MaxAltitudeM  float64 `json:"maxAltitudeM"`
	RangeKm       float64 `json:"rangeKm"`
	FlightTimeMin float64 `json:"flightTimeMin"`
}

// RegisterDroneRequest is the body of POST /api/v1/drones.
// Status is optional; empty means the drone starts as available.
type RegisterDroneRequest struct {
	ShopID         string                `json:"shopId"`
	Model          string                `json:"model"`
	SerialNumber   string                `json:"serialNumber"`
	Capacity       CapacityPayload       `json:"capacity"`
	Battery        BatteryPayload        `json:"battery"`
	Specifications SpecificationsPayload `json:"specifications"`
	Status         string                `json:"status,omitempty"`
}

// SetDroneStatusRequest is the body of PATCH /api/v1/drones/:droneID/status.
type SetDroneStatusRequest struct {
	Status string `json:"status"`
}

// SetBatteryLevelRequest is the body of PATCH /api/v1/drones/:droneID/battery.
type SetBatteryLevelRequest struct {
	Level int `json:"level"`
}

// AvailableDrone is one row of GET /api/v1/drones/available.
type AvailableDrone struct {
	ID                 string  `json:"id"`
	ShopID             string  `json:"shopId"`
	Model              string  `json:"model"`
	SerialNumber       string  `json:"serialNumber"`
	BatteryCurrent     int     `json:"batteryCurrent"`
	BatteryMaxCapacity int     `json:"batteryMaxCapacity"`
	CapacityWeightKg   float64 `json:"capacityWeightKg"`
}

// CoordinatesPayload mirrors kernel.GeoLocation on the wire.
type CoordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DeliveryAddressPayload mirrors order.DeliveryAddress on the wire.
type DeliveryAddressPayload struct {
	Address     string             `json:"address"`
	City        string             `json:"city"`
	State       string             `json:"state"`
	Coordinates CoordinatesPayload `json:"coordinates"`
}

// ContactInfoPayload mirrors order.ContactInfo on the wire.
type ContactInfoPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ShopRefPayload carries the denormalized shop snapshot of an order item.
type ShopRefPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Address string `json:"address"`
	OwnerID string `json:"ownerId,omitempty"`
}

// OrderItemPayload is one line item of a new order.
type OrderItemPayload struct {
	ItemID   string         `json:"itemId"`
	Name     string         `json:"name"`
	ImageURL string         `json:"imageUrl,omitempty"`
	Category string         `json:"category,omitempty"`
	FoodType string         `json:"foodType,omitempty"`
	Shop     ShopRefPayload `json:"shop"`
	Quantity int            `json:"quantity"`
	Price    int64          `json:"price"`
	Subtotal int64          `json:"subtotal"`
	WeightKg float64        `json:"weightKg,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. The buyer comes from
// the X-User-ID header, not the body.
type CreateOrderRequest struct {
	Items           []OrderItemPayload     `json:"items"`
	TotalAmount     int64                  `json:"totalAmount"`
	DeliveryAddress DeliveryAddressPayload `json:"deliveryAddress"`
	ContactInfo     ContactInfoPayload     `json:"contactInfo"`
}

// SetOrderStatusRequest is the body of PATCH /api/v1/orders/:orderID/status.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummary is one row of the order listing endpoints.
type OrderSummary struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	TotalAmount int64   `json:"totalAmount"`
	Status      string  `json:"status"`
	DroneID     *string `json:"droneId,omitempty"`
}

// LocationUpdateRequest is the body of
// POST /api/v1/orders/:orderID/tracking/location. Timestamp is optional
// RFC 3339; empty means the server clock.
type LocationUpdateRequest struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp,omitempty"`
}
