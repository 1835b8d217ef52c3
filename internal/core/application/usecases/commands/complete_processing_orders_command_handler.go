package commands

import (
	"context"
	"time"
)

// ProcessingDwell is how long an order stays in "processing" before the
// advancer promotes it to "completed". Measured from the order's last
// modification, so a user edit during processing restarts the wait.
const ProcessingDwell = 2 * time.Minute

// CompleteProcessingOrdersCommandHandler promotes aged processing orders to
// "completed". Eligible rows are selected with a write lock, mirroring the
// pending advancer, so overlapping runs and user cancellations serialize.
type CompleteProcessingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCompleteProcessingOrdersCommandHandler creates a handler for the
// processing order advancer. Requires an OrderUoWFactory for transactional
// persistence and a Clock for the dwell cutoff.
func NewCompleteProcessingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock Clock,
) CompleteProcessingOrdersCommandHandler {
	return CompleteProcessingOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle completes every processing order last updated at least
// ProcessingDwell ago and returns how many were completed. All completions of
// one run share a single transaction; an empty run commits nothing.
func (h *CompleteProcessingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteProcessingOrdersCommand,
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

	orders, err := orderRepo.GetEligibleProcessing(ctx, now.Add(-ProcessingDwell))
	if err != nil {
		return 0, err
	}

	if len(orders) == 0 {
		return 0, nil
	}

	for _, aggregate := range orders {
		if err = aggregate.Complete(now); err != nil {
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
