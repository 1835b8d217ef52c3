package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial updates of an order.
// The order row is locked for the duration of the transaction so concurrent
// updates and the background advancer serialize instead of clobbering each
// other's writes.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// Requires an OrderUoWFactory for transactional persistence and a Clock for
// the modification timestamp.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the update command and returns the updated order.
// Fails with a not found error when the order does not exist, a forbidden
// error when the caller does not own it, and an invalid transition error when
// a requested status change does not follow the lifecycle graph. An update
// with no fields still refreshes the modification timestamp.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err = h.applyChanges(aggregate, cmd); err != nil {
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

// applyChanges applies each supplied field to the aggregate in turn. The
// final Touch covers the empty update; for non-empty updates it repeats the
// same timestamp the field changes already wrote.
func (h *UpdateOrderCommandHandler) applyChanges(aggregate *order.Order, cmd UpdateOrderCommand) error {
	now := h.clock()

	if cmd.ItemName() != nil {
		if err := aggregate.ChangeItemName(*cmd.ItemName(), now); err != nil {
			return err
		}
	}

	if cmd.Quantity() != nil {
		if err := aggregate.ChangeQuantity(*cmd.Quantity(), now); err != nil {
			return err
		}
	}

	if cmd.Price() != nil {
		if err := aggregate.ChangePrice(*cmd.Price(), now); err != nil {
			return err
		}
	}

	if cmd.Status() != nil {
		if err := aggregate.ChangeStatus(*cmd.Status(), now); err != nil {
			return err
		}
	}

	aggregate.Touch(now)
	return nil
}
