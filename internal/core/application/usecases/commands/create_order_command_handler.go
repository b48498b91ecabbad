package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Creates and persists new order aggregates in the pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Constructs the order aggregate, which verifies the reported total against
// the sum of line subtotals, and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderEntity, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.Items(),
		cmd.TotalAmount(),
		cmd.DeliveryAddress(),
		cmd.ContactInfo(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
