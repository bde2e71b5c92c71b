package menu_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestNewMenuItem(t *testing.T) {
	id := kernel.NewUUID()
	branchID := kernel.NewUUID()

	t.Run("should create valid menu item", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, branchID, "Margherita", mustMoney(t, 1100), 20)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.BranchID().IsEqual(branchID))
		assert.Equal(t, "Margherita", item.Name())
		assert.True(t, item.Price().IsEqual(mustMoney(t, 1100)))
		assert.Equal(t, 20, item.Quantity())
	})

	t.Run("should accept zero stock", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, branchID, "Margherita", mustMoney(t, 1100), 0)

		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, branchID, "Margherita", mustMoney(t, 1100), -1)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, branchID, "Margherita", mustMoney(t, 0), 20)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		item, err := menu.NewMenuItem(id, branchID, "", mustMoney(t, 1100), 20)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail validation for zero value item", func(t *testing.T) {
		var item menu.MenuItem

		require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_Restock(t *testing.T) {
	newItem := func(t *testing.T) *menu.MenuItem {
		t.Helper()
		item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Ramen", mustMoney(t, 950), 5)
		require.NoError(t, err)
		return item
	}

	t.Run("should increase stock", func(t *testing.T) {
		item := newItem(t)

		require.NoError(t, item.Restock(10))
		assert.Equal(t, 15, item.Quantity())
	})

	t.Run("should reject zero and negative amounts", func(t *testing.T) {
		item := newItem(t)

		require.Error(t, item.Restock(0))
		require.Error(t, item.Restock(-3))
		assert.Equal(t, 5, item.Quantity())
	})
}

func TestMenuItem_ChangePrice(t *testing.T) {
	item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Ramen", mustMoney(t, 950), 5)
	require.NoError(t, err)

	t.Run("should update price", func(t *testing.T) {
		require.NoError(t, item.ChangePrice(mustMoney(t, 1050)))
		assert.True(t, item.Price().IsEqual(mustMoney(t, 1050)))
	})

	t.Run("should reject zero price", func(t *testing.T) {
		require.Error(t, item.ChangePrice(mustMoney(t, 0)))
		assert.True(t, item.Price().IsEqual(mustMoney(t, 1050)))
	})
}

func TestInsufficientStockError(t *testing.T) {
	id := kernel.NewUUID()

	err := menu.NewInsufficientStockError(id, "Ramen", 2, 5)

	require.ErrorIs(t, err, menu.ErrInsufficientStock)
	assert.Contains(t, err.Error(), `"Ramen" has 2 left, 5 requested`)
}
