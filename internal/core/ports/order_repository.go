package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and lifecycle timestamps.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id with a row-level write lock, so a
	// read-then-write transition serializes against concurrent writers. Must
	// be called inside an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetEligiblePending retrieves all pending orders created at or before the
	// cutoff, locking the rows for update. Used by the background advancer's
	// promote-to-processing task.
	GetEligiblePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetEligibleProcessing retrieves all processing orders last updated at or
	// before the cutoff, locking the rows for update. Used by the background
	// advancer's promote-to-completed task.
	GetEligibleProcessing(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
