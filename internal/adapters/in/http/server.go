package http

import (
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the caller's identity. The upstream gateway
// authenticates the caller; this service trusts the header as the principal
// and performs no credential checks.
const userIDHeader = "X-User-ID"

// Server exposes the fleet, order, and dispatch use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerDroneHandler    commands.RegisterDroneCommandHandler
	setDroneStatusHandler   commands.SetDroneStatusCommandHandler
	setBatteryLevelHandler  commands.SetBatteryLevelCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	setOrderStatusHandler   commands.SetOrderStatusCommandHandler
	assignDroneHandler      commands.AssignDroneCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	// Query handlers
	getAvailableDronesHandler queries.GetAvailableDronesQueryHandler
	getOrdersByUserHandler    queries.GetOrdersByUserQueryHandler
	getOrdersByStatusHandler  queries.GetOrdersByStatusQueryHandler

	// Realtime tracking
	tracking *TrackingHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerDroneHandler commands.RegisterDroneCommandHandler,
	setDroneStatusHandler commands.SetDroneStatusCommandHandler,
	setBatteryLevelHandler commands.SetBatteryLevelCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	assignDroneHandler commands.AssignDroneCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAvailableDronesHandler queries.GetAvailableDronesQueryHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	tracking *TrackingHandler,
) *Server {
	return &Server{
		registerDroneHandler:      registerDroneHandler,
		setDroneStatusHandler:     setDroneStatusHandler,
		setBatteryLevelHandler:    setBatteryLevelHandler,
		createOrderHandler:        createOrderHandler,
		setOrderStatusHandler:     setOrderStatusHandler,
		assignDroneHandler:        assignDroneHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		cancelOrderHandler:        cancelOrderHandler,
		getAvailableDronesHandler: getAvailableDronesHandler,
		getOrdersByUserHandler:    getOrdersByUserHandler,
		getOrdersByStatusHandler:  getOrdersByStatusHandler,
		tracking:                  tracking,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/drones", s.RegisterDrone)
	api.GET("/drones/available", s.GetAvailableDrones)
	api.PATCH("/drones/:droneID/status", s.SetDroneStatus)
	api.PATCH("/drones/:droneID/battery", s.SetBatteryLevel)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetMyOrders)
	api.GET("/orders/status/:status", s.GetOrdersByStatus)
	api.PATCH("/orders/:orderID/status", s.SetOrderStatus)
	api.POST("/orders/:orderID/assign", s.AssignDrone)
	api.POST("/orders/:orderID/complete", s.CompleteDelivery)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.GET("/orders/:orderID/tracking/stream", s.tracking.Stream)
	api.POST("/orders/:orderID/tracking/location", s.tracking.PublishLocation)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterDrone handles POST /api/v1/drones - registers a new drone.
func (s *Server) RegisterDrone(ctx echo.Context) error {
	var request RegisterDroneRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shopID, err := parseUUID("shopId", request.ShopID)
	if err != nil {
		return respondError(ctx, err)
	}

	// Empty means the default initial status
	initialStatus := drone.Unknown
	if request.Status != "" {
		if initialStatus, err = drone.StatusFromString(request.Status); err != nil {
			return respondError(ctx, err)
		}
	}

	battery, err := drone.NewBattery(request.Battery.Current, request.Battery.MaxCapacity)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterDroneCommand(
		shopID,
		request.Model,
		request.SerialNumber,
		drone.Capacity{
			WeightKg:  request.Capacity.WeightKg,
			VolumeCm3: request.Capacity.VolumeCm3,
		},
		battery,
		drone.Specifications{
			MaxSpeedKmh:   request.Specifications.MaxSpeedKmh,
			MaxAltitudeM:  request.Specifications.MaxAltitudeM,
			RangeKm:       request.Specifications.RangeKm,
			FlightTimeMin: request.Specifications.FlightTimeMin,
		},
		initialStatus,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DroneID().String()})
}

// GetAvailableDrones handles GET /api/v1/drones/available - lists available
// drones, optionally filtered by the shop_id query parameter.
func (s *Server) GetAvailableDrones(ctx echo.Context) error {
	var shopID *kernel.UUID
	if raw := ctx.QueryParam("shop_id"); raw != "" {
		parsed, err := parseUUID("shop_id", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		shopID = &parsed
	}

	query, err := queries.NewGetAvailableDronesQuery(shopID)
	if err != nil {
		return respondError(ctx, err)
	}

	drones, err := s.getAvailableDronesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailableDrone, len(drones))
	for i, row := range drones {
		response[i] = AvailableDrone{
			ID:                 row.ID.String(),
			ShopID:             row.ShopID.String(),
			Model:              row.Model,
			SerialNumber:       row.SerialNumber,
			BatteryCurrent:     row.BatteryCurrent,
			BatteryMaxCapacity: row.BatteryMaxCapacity,
			CapacityWeightKg:   row.CapacityWeightKg,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetDroneStatus handles PATCH /api/v1/drones/:droneID/status - applies an
// operator-requested status transition.
func (s *Server) SetDroneStatus(ctx echo.Context) error {
	droneID, err := parseUUID("droneID", ctx.Param("droneID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetDroneStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := drone.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetDroneStatusCommand(droneID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setDroneStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetBatteryLevel handles PATCH /api/v1/drones/:droneID/battery - records a
// battery telemetry reading.
func (s *Server) SetBatteryLevel(ctx echo.Context) error {
	droneID, err := parseUUID("droneID", ctx.Param("droneID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetBatteryLevelRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetBatteryLevelCommand(droneID, request.Level)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setBatteryLevelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// principal identified by the X-User-ID header.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, err := principalFromHeader(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := itemsFromPayload(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	location, err := kernel.NewGeoLocation(
		request.DeliveryAddress.Coordinates.Lat,
		request.DeliveryAddress.Coordinates.Lng,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := order.NewDeliveryAddress(
		request.DeliveryAddress.Address,
		request.DeliveryAddress.City,
		request.DeliveryAddress.State,
		location,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	contact, err := order.NewContactInfo(
		request.ContactInfo.Name,
		request.ContactInfo.Phone,
		request.ContactInfo.Email,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(userID, items, request.TotalAmount, address, contact)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.OrderID().String()})
}

// GetMyOrders handles GET /api/v1/orders - lists the principal's orders,
// newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	userID, err := principalFromHeader(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaries(orders))
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status - lists orders
// in the given status, oldest first.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaries(orders))
}

// SetOrderStatus handles PATCH /api/v1/orders/:orderID/status - advances the
// order through its lifecycle. A cancelled target runs through the
// cancellation use case so the drone recall stays coupled to the transition;
// the remaining dispatch-managed transitions go through the dispatch
// endpoints instead.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if status == order.Cancelled {
		cmd, cmdErr := commands.NewCancelOrderCommand(orderID)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}

		if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}

		return ctx.NoContent(http.StatusNoContent)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDrone handles POST /api/v1/orders/:orderID/assign - dispatches the
// best available drone to the order.
func (s *Server) AssignDrone(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDroneCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:orderID/complete - marks the
// delivery finished and releases the drone.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - cancels the order
// and recalls its drone if one was dispatched.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// principalFromHeader extracts the authenticated caller from X-User-ID.
func principalFromHeader(ctx echo.Context) (kernel.UUID, error) {
	return parseUUID(userIDHeader, ctx.Request().Header.Get(userIDHeader))
}

// parseUUID parses a caller-supplied identifier. Malformed input is reported
// as a *errs.ValueIsInvalidError naming the offending parameter, so it maps
// to a client error rather than a server fault.
func parseUUID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// itemsFromPayload builds the order line items through their domain
// constructors. The first invalid item aborts the whole request.
func itemsFromPayload(payloads []OrderItemPayload) ([]order.Item, error) {
	items := make([]order.Item, 0, len(payloads))
	for _, payload := range payloads {
		itemID, err := parseUUID("itemId", payload.ItemID)
		if err != nil {
			return nil, err
		}

		shopID, err := parseUUID("shop.id", payload.Shop.ID)
		if err != nil {
			return nil, err
		}

		shop := order.ShopRef{
			ID:      shopID,
			Name:    payload.Shop.Name,
			City:    payload.Shop.City,
			State:   payload.Shop.State,
			Address: payload.Shop.Address,
		}
		if payload.Shop.OwnerID != "" {
			if shop.OwnerID, err = parseUUID("shop.ownerId", payload.Shop.OwnerID); err != nil {
				return nil, err
			}
		}

		item, err := order.NewItem(
			itemID,
			payload.Name,
			payload.ImageURL,
			payload.Category,
			payload.FoodType,
			shop,
			payload.Quantity,
			payload.Price,
			payload.Subtotal,
			payload.WeightKg,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// orderSummaries converts the read model rows to wire shapes.
func orderSummaries(rows []queries.OrderSummaryResponse) []OrderSummary {
	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		summary := OrderSummary{
			ID:          row.ID.String(),
			UserID:      row.UserID.String(),
			TotalAmount: row.TotalAmount,
			Status:      row.Status,
		}
		if row.DroneID != nil {
			droneID := row.DroneID.String()
			summary.DroneID = &droneID
		}
		response[i] = summary
	}

	return response
}
