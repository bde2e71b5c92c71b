package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create non-negative amounts", func(t *testing.T) {
		testCases := []int64{0, 1, 99, 100, 123456789}

		for _, cents := range testCases {
			m, err := kernel.NewMoney(cents)

			require.NoError(t, err)
			require.NoError(t, m.Validate())
			assert.Equal(t, cents, m.Cents())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(1200)
		b, _ := kernel.NewMoney(350)

		sum := a.Add(b)

		require.NoError(t, sum.Validate())
		assert.Equal(t, int64(1550), sum.Cents())
	})

	t.Run("MultiplyQuantity scales by item count", func(t *testing.T) {
		price, _ := kernel.NewMoney(1200)

		total := price.MultiplyQuantity(3)

		require.NoError(t, total.Validate())
		assert.Equal(t, int64(3600), total.Cents())
	})
}

func TestMoney_IsPositive(t *testing.T) {
	zero, _ := kernel.NewMoney(0)
	one, _ := kernel.NewMoney(1)

	assert.False(t, zero.IsPositive())
	assert.True(t, one.IsPositive())
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1200, "12.00"},
		{1234, "12.34"},
	}

	for _, tc := range testCases {
		m, err := kernel.NewMoney(tc.cents)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, m.String())
	}
}
