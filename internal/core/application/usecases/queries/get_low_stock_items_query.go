package queries

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
	"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
)

// GetLowStockItemsQuery retrieves menu items whose stock has fallen to or
// below a threshold. Backs the restock report job and the manager dashboard.
type GetLowStockItemsQuery struct {
	scope     access.BranchScope
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a low stock query with the given threshold.
func NewGetLowStockItemsQuery(scope access.BranchScope, threshold int) (GetLowStockItemsQuery, error) {
	if threshold < 0 {
		return GetLowStockItemsQuery{}, errs.NewValueIsInvalidErrorWithCause("threshold",
			fmt.Errorf("%d is less than 0", threshold))
	}

	return GetLowStockItemsQuery{
		scope:     scope,
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// Scope returns the branch scope the query is limited to.
func (q GetLowStockItemsQuery) Scope() access.BranchScope {
	return q.scope
}

// Threshold returns the stock level at or below which an item is reported.
func (q GetLowStockItemsQuery) Threshold() int {
	return q.threshold
}

// GetLowStockItemsQueryResponse is one menu item running low.
type GetLowStockItemsQueryResponse struct {
	ID       kernel.UUID
	BranchID kernel.UUID
	Name     string
	Quantity int
}
