package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrCompleteProcessingOrdersCommandIsNotConstructed = errors.New(
	"CompleteProcessingOrdersCommand must be created via NewCompleteProcessingOrdersCommand constructor",
)

// CompleteProcessingOrdersCommand triggers completion of processing orders
// that have waited out their dwell time. This batch operation is run
// periodically by a scheduled job.
type CompleteProcessingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteProcessingOrdersCommand creates a command to complete aged
// processing orders. This is a parameterless command that processes all
// eligible orders.
func NewCompleteProcessingOrdersCommand() CompleteProcessingOrdersCommand {
	return CompleteProcessingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteProcessingOrdersCommandIsNotConstructed if validation fails.
func (c *CompleteProcessingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessingOrdersCommandIsNotConstructed)
}
