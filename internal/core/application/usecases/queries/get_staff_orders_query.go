package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetStaffOrdersQueryIsNotConstructed = errors.New(
	"GetStaffOrdersQuery must be created via NewGetStaffOrdersQuery constructor",
)

// GetStaffOrdersQuery retrieves the full order list for staff: every order
// (walk-in and customer, any status) within the caller's branch scope,
// newest first.
type GetStaffOrdersQuery struct {
	scope access.BranchScope

	guard guard.ConstructorGuard
}

// NewGetStaffOrdersQuery creates a query for the staff order list.
func NewGetStaffOrdersQuery(scope access.BranchScope) GetStaffOrdersQuery {
	return GetStaffOrdersQuery{scope: scope, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStaffOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffOrdersQueryIsNotConstructed)
}

// Scope returns the branch scope the query is limited to.
func (q GetStaffOrdersQuery) Scope() access.BranchScope {
	return q.scope
}

// GetStaffOrdersQueryResponse is the staff view of one order, including
// whether it was a walk-in sale and which cashier handled it.
type GetStaffOrdersQueryResponse struct {
	ID            kernel.UUID
	BranchID      kernel.UUID
	CustomerName  string
	CashierID     *kernel.UUID
	Status        string
	PaymentMethod *string
	Total         kernel.Money
	CreatedAt     time.Time
	WalkIn        bool
}
