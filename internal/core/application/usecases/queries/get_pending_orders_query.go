// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections straight
// from the database; branch visibility comes in as an access.BranchScope
// resolved by the caller, applied uniformly to the SQL.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves the cashier's confirmation queue: customer
// orders still in Pending status, oldest first. Walk-in orders never appear
// here; they are born completed.
type GetPendingOrdersQuery struct {
	scope access.BranchScope

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the pending queue, limited to
// the given branch scope.
func NewGetPendingOrdersQuery(scope access.BranchScope) GetPendingOrdersQuery {
	return GetPendingOrdersQuery{scope: scope, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// Scope returns the branch scope the query is limited to.
func (q GetPendingOrdersQuery) Scope() access.BranchScope {
	return q.scope
}

// GetPendingOrdersQueryResponse is the cashier's view of one pending order:
// who ordered, how they intend to pay, and the total to confirm.
type GetPendingOrdersQueryResponse struct {
	ID            kernel.UUID
	BranchID      kernel.UUID
	CustomerName  string
	PaymentMethod string
	Total         kernel.Money
	CreatedAt     time.Time
}
