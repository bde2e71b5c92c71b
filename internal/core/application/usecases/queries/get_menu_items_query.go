package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves one branch's menu with current prices and stock.
type GetMenuItemsQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a query for a branch menu.
func NewGetMenuItemsQuery(branchID kernel.UUID) (GetMenuItemsQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetMenuItemsQuery{}, err
	}

	return GetMenuItemsQuery{branchID: branchID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// BranchID returns the branch whose menu is requested.
func (q GetMenuItemsQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetMenuItemsQueryResponse is one menu position with live price and stock.
type GetMenuItemsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	Quantity int
}
