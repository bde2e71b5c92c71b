package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetBranchesQueryIsNotConstructed = errors.New(
	"GetBranchesQuery must be created via NewGetBranchesQuery constructor",
)

// GetBranchesQuery retrieves all branches. Customers use it to pick where to
// order; headquarters uses it for oversight.
type GetBranchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBranchesQuery creates a query to retrieve all branches.
func NewGetBranchesQuery() GetBranchesQuery {
	return GetBranchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBranchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchesQueryIsNotConstructed)
}

// GetBranchesQueryResponse is one branch with its contact details.
type GetBranchesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	Phone     string
	ManagerID *kernel.UUID
}
