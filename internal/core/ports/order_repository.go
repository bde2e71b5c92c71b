package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists a status change conditionally: the row is updated
	// only if it still holds the expected previous status. If another request
	// moved the order first the update matches zero rows and UpdateStatus
	// returns an error wrapping order.ErrAlreadyProcessed.
	UpdateStatus(ctx context.Context, aggregate *order.Order, from order.Status) error
}
