package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation.
// Locks the order row so a cancellation racing the background advancer sees
// the advancer's write, or blocks it, instead of silently losing.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence and a Clock for
// the modification timestamp.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the cancellation command and returns the cancelled order.
// Fails with a not found error when the order does not exist, a forbidden
// error when the caller does not own it, and an invalid transition error when
// the order is already completed or cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return nil, errs.NewForbiddenError("order", cmd.OrderID())
	}

	if err = aggregate.Cancel(h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
