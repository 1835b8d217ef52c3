package commands

import (
	"context"
	"time"
)

// PendingDwell is how long an order stays in "pending" before the advancer
// promotes it to "processing".
const PendingDwell = time.Minute

// AdvancePendingOrdersCommandHandler promotes aged pending orders to
// "processing". The eligible rows are selected with a write lock, so two
// overlapping runs never promote the same order twice: the second run either
// waits and then no longer sees the row as pending, or selects a disjoint set.
type AdvancePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewAdvancePendingOrdersCommandHandler creates a handler for the pending
// order advancer. Requires an OrderUoWFactory for transactional persistence
// and a Clock for the dwell cutoff.
func NewAdvancePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock Clock,
) AdvancePendingOrdersCommandHandler {
	return AdvancePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle promotes every pending order created at least PendingDwell ago and
// returns how many were promoted. All promotions of one run share a single
// transaction; an empty run commits nothing.
func (h *AdvancePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AdvancePendingOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock()
	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetEligiblePending(ctx, now.Add(-PendingDwell))
	if err != nil {
		return 0, err
	}

	if len(orders) == 0 {
		return 0, nil
	}

	for _, aggregate := range orders {
		if err = aggregate.StartProcessing(now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
