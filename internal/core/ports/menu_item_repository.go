package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items,
// including the atomic stock reservation that backs order placement.
type MenuItemRepository interface {
	// Add persists a new menu item to storage.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item (restock, price change).
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// Reserve atomically decrements stock for every request against the given
	// branch, returning the name and unit price captured by each decrement.
	// Each item is decremented with a single conditional update that only
	// matches while enough stock remains, so concurrent reservations can never
	// oversell. On the first failing item Reserve returns an
	// errs.ObjectNotFoundError (item not in this branch's menu) or a
	// menu.InsufficientStockError; the caller's transaction rollback discards
	// any decrements already applied.
	//
	// Reserve must run inside a UnitOfWork transaction.
	Reserve(ctx context.Context, branchID kernel.UUID, requests []menu.ReservationRequest) ([]menu.ReservedItem, error)
}
