package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
)

// GetKitchenOrdersQuery retrieves the kitchen display queue: confirmed orders
// that are not yet completed, oldest first.
type GetKitchenOrdersQuery struct {
	scope access.BranchScope

	guard guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query for the kitchen queue, limited to
// the given branch scope.
func NewGetKitchenOrdersQuery(scope access.BranchScope) GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{scope: scope, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}

// Scope returns the branch scope the query is limited to.
func (q GetKitchenOrdersQuery) Scope() access.BranchScope {
	return q.scope
}

// KitchenLine is one position on a kitchen ticket. The kitchen cares about
// what to cook and how many; prices are deliberately absent from this view.
type KitchenLine struct {
	Name     string
	Quantity int
}

// GetKitchenOrdersQueryResponse is the kitchen's view of one order in the
// preparation pipeline.
type GetKitchenOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	CreatedAt    time.Time
	Lines        []KitchenLine
}
