package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/tracking"

	"github.com/labstack/echo/v4"
)

// locationEvent is the SSE data payload for one position sample.
type locationEvent struct {
	OrderID   string  `json:"orderId"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp"`
}

// TrackingHandler bridges the realtime hub to HTTP: drones push position
// samples in, customers stream them out over server-sent events.
type TrackingHandler struct {
	hub *tracking.Hub
}

// NewTrackingHandler creates the realtime tracking transport adapter.
func NewTrackingHandler(hub *tracking.Hub) *TrackingHandler {
	return &TrackingHandler{hub: hub}
}

// Stream handles GET /api/v1/orders/:orderID/tracking/stream - subscribes the
// caller to the order's position events and streams them as SSE
// "drone-location" events until the client goes away.
func (h *TrackingHandler) Stream(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	connID := kernel.NewUUID().String()
	events := h.hub.Subscribe(connID, orderID)
	defer h.hub.Disconnect(connID)

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	requestCtx := ctx.Request().Context()
	for {
		select {
		case <-requestCtx.Done():
			return nil
		case event, open := <-events:
			if !open {
				return nil
			}

			payload, err := json.Marshal(locationEvent{
				OrderID:   event.OrderID.String(),
				Lat:       event.Location.Lat(),
				Lng:       event.Location.Lng(),
				Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			})
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(response, "event: drone-location\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}

// PublishLocation handles POST /api/v1/orders/:orderID/tracking/location -
// ingests a drone position sample and fans it out to the order's subscribers.
// Accepted regardless of subscriber count; with nobody listening the sample
// is dropped.
func (h *TrackingHandler) PublishLocation(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request LocationUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	location, err := kernel.NewGeoLocation(request.Lat, request.Lng)
	if err != nil {
		return respondError(ctx, err)
	}

	timestamp := time.Now()
	if request.Timestamp != "" {
		if timestamp, err = time.Parse(time.RFC3339, request.Timestamp); err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid timestamp: " + err.Error(),
			})
		}
	}

	h.hub.Publish(orderID, location, timestamp)

	return ctx.NoContent(http.StatusAccepted)
}
