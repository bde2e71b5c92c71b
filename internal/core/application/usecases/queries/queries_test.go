package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/access"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors(t *testing.T) {
	scope := access.ScopeBranch(kernel.NewUUID())

	t.Run("pending orders", func(t *testing.T) {
		q := queries.NewGetPendingOrdersQuery(scope)
		require.NoError(t, q.Validate())
		assert.False(t, q.Scope().IsAll())
	})

	t.Run("kitchen orders", func(t *testing.T) {
		q := queries.NewGetKitchenOrdersQuery(access.ScopeAll())
		require.NoError(t, q.Validate())
		assert.True(t, q.Scope().IsAll())
	})

	t.Run("customer orders requires valid customer", func(t *testing.T) {
		q, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		var invalid kernel.UUID
		_, err = queries.NewGetCustomerOrdersQuery(invalid)
		require.Error(t, err)
	})

	t.Run("menu items requires valid branch", func(t *testing.T) {
		var invalid kernel.UUID
		_, err := queries.NewGetMenuItemsQuery(invalid)
		require.Error(t, err)
	})

	t.Run("low stock rejects negative threshold", func(t *testing.T) {
		_, err := queries.NewGetLowStockItemsQuery(scope, -1)
		require.Error(t, err)

		q, err := queries.NewGetLowStockItemsQuery(scope, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, q.Threshold())
	})
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t, queries.GetPendingOrdersQuery{}.Validate(),
		queries.ErrGetPendingOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetKitchenOrdersQuery{}.Validate(),
		queries.ErrGetKitchenOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetCustomerOrdersQuery{}.Validate(),
		queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetStaffOrdersQuery{}.Validate(),
		queries.ErrGetStaffOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetMenuItemsQuery{}.Validate(),
		queries.ErrGetMenuItemsQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetBranchesQuery{}.Validate(),
		queries.ErrGetBranchesQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetLowStockItemsQuery{}.Validate(),
		queries.ErrGetLowStockItemsQueryIsNotConstructed)
}
