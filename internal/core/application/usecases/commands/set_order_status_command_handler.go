package commands

import (
	"context"
)

// SetOrderStatusCommandHandler advances an order through the staff-managed
// part of its lifecycle. The order aggregate enforces single-step forward
// progression and rejects dispatch-managed targets.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order status change command.
// Returns *errs.ObjectNotFoundError if the order does not exist,
// *errs.InvalidTransitionError if the progression rules forbid the move,
// and ports.ErrOrderStatusChanged if a concurrent operation moved the order
// first.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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
	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := orderEntity.Status()
	if err = orderEntity.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, orderEntity, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
