package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrAdvancePendingOrdersCommandIsNotConstructed = errors.New(
	"AdvancePendingOrdersCommand must be created via NewAdvancePendingOrdersCommand constructor",
)

// AdvancePendingOrdersCommand triggers promotion of pending orders that have
// waited out their dwell time to "processing". This batch operation is run
// periodically by a scheduled job.
type AdvancePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvancePendingOrdersCommand creates a command to promote aged pending
// orders. This is a parameterless command that processes all eligible orders.
func NewAdvancePendingOrdersCommand() AdvancePendingOrdersCommand {
	return AdvancePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvancePendingOrdersCommandIsNotConstructed if validation fails.
func (c *AdvancePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePendingOrdersCommandIsNotConstructed)
}
