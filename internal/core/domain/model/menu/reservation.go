package menu

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
)

// ErrInsufficientStock classifies reservation failures caused by stock, as
// opposed to a missing item. InsufficientStockError unwraps to it.
var ErrInsufficientStock = errors.New("insufficient stock")

// ReservationRequest asks for a quantity of one menu item. An order's
// reservation is a set of these, applied all-or-nothing inside a single
// transaction.
type ReservationRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// ReservedItem is the result of a successful reservation for one item: the
// display name and unit price read back from the same atomic decrement that
// consumed the stock. Orders build their lines from these captured values.
type ReservedItem struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
}

// InsufficientStockError reports that a reservation asked for more units than
// the branch has on hand. Available holds the stock observed when the
// conditional decrement refused the request.
type InsufficientStockError struct {
	MenuItemID kernel.UUID
	Name       string
	Available  int
	Requested  int
}

// NewInsufficientStockError creates an InsufficientStockError.
func NewInsufficientStockError(menuItemID kernel.UUID, name string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		MenuItemID: menuItemID,
		Name:       name,
		Available:  available,
		Requested:  requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %q has %d left, %d requested",
		ErrInsufficientStock, e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
