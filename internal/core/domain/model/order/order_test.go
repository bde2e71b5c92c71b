package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func makeLines(t *testing.T) []order.Line {
	t.Helper()
	burger, err := order.NewLine(kernel.NewUUID(), "Smash Burger", 2, mustMoney(t, 1250))
	require.NoError(t, err)
	fries, err := order.NewLine(kernel.NewUUID(), "Fries", 1, mustMoney(t, 450))
	require.NoError(t, err)
	return []order.Line{burger, fries}
}

func TestNewLine(t *testing.T) {
	t.Run("should create valid line and compute subtotal", func(t *testing.T) {
		line, err := order.NewLine(kernel.NewUUID(), "Lemonade", 3, mustMoney(t, 300))

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, 3, line.Quantity())
		assert.True(t, line.Subtotal().IsEqual(mustMoney(t, 900)))
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Lemonade", 0, mustMoney(t, 300))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "", 1, mustMoney(t, 300))

		require.Error(t, err)
	})

	t.Run("should fail with zero unit price", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Water", 1, mustMoney(t, 0))

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value line", func(t *testing.T) {
		var line order.Line

		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("should accept all known methods", func(t *testing.T) {
		for _, s := range []string{"CASH", "CREDIT_CARD", "DEBIT_CARD", "ONLINE_PAYMENT"} {
			method, err := order.PaymentMethodFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, method.String())
		}
	})

	t.Run("should reject unknown methods", func(t *testing.T) {
		for _, s := range []string{"", "cash", "BITCOIN", "CARD"} {
			_, err := order.PaymentMethodFromString(s)

			require.Error(t, err)
		}
	})
}

func TestNewCustomerOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		lines := makeLines(t)

		o, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, branchID,
			"Alice", order.PaymentCash, lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.Customer().IsEqual(customerID))
		assert.Nil(t, o.Cashier())
		assert.True(t, o.BranchID().IsEqual(branchID))
		assert.Equal(t, "Alice", o.CustomerName())
		require.NotNil(t, o.PaymentMethod())
		assert.Equal(t, order.PaymentCash, *o.PaymentMethod())
		assert.Len(t, o.Lines(), 2)
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should compute total from captured line prices", func(t *testing.T) {
		lines := makeLines(t)

		o, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, branchID,
			"Alice", order.PaymentCreditCard, lines)

		require.NoError(t, err)
		// 2 x 1250 + 1 x 450
		assert.True(t, o.Total().IsEqual(mustMoney(t, 2950)))
	})

	t.Run("should fail without lines", func(t *testing.T) {
		o, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, branchID,
			"Alice", order.PaymentCash, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		o, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, branchID,
			"", order.PaymentCash, makeLines(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid payment method", func(t *testing.T) {
		o, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, branchID,
			"Alice", order.PaymentMethod("IOU"), makeLines(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewCustomerOrder(invalidID, customerID, branchID,
			"", order.PaymentCash, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "order lines")
	})
}

func TestNewWalkInOrder(t *testing.T) {
	cashierID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	t.Run("should create completed order with cashier and no payment method", func(t *testing.T) {
		o, err := order.NewWalkInOrder(kernel.NewUUID(), cashierID, branchID,
			"Walk-in", makeLines(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Completed, o.Status())
		assert.Nil(t, o.Customer())
		require.NotNil(t, o.Cashier())
		assert.True(t, o.Cashier().IsEqual(cashierID))
		assert.Nil(t, o.PaymentMethod())
	})

	t.Run("should reject any further lifecycle change", func(t *testing.T) {
		o, err := order.NewWalkInOrder(kernel.NewUUID(), cashierID, branchID,
			"Walk-in", makeLines(t))
		require.NoError(t, err)

		require.ErrorIs(t, o.Confirm(kernel.NewUUID()), order.ErrAlreadyProcessed)
		require.ErrorIs(t, o.AdvanceKitchen(order.Preparing), order.ErrAlreadyProcessed)
		require.ErrorIs(t, o.ConfirmCollection(), order.ErrAlreadyProcessed)
	})
}

func TestRestoreOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	method := order.PaymentDebitCard
	createdAt := time.Date(2026, time.March, 14, 11, 30, 0, 0, time.UTC)

	t.Run("should rehydrate stored order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), &customerID, nil, branchID,
			"Bob", &method, order.Preparing, makeLines(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, o.Customer().IsEqual(customerID))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), &customerID, nil, branchID,
			"Bob", &method, order.Unknown, makeLines(t), createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Confirm(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Alice", order.PaymentCash, makeLines(t))
		require.NoError(t, err)
		return o
	}

	t.Run("should confirm pending order and record cashier", func(t *testing.T) {
		o := newPendingOrder(t)
		cashierID := kernel.NewUUID()

		err := o.Confirm(cashierID)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, o.Cashier())
		assert.True(t, o.Cashier().IsEqual(cashierID))
	})

	t.Run("should fail to confirm twice", func(t *testing.T) {
		o := newPendingOrder(t)
		firstCashier := kernel.NewUUID()
		require.NoError(t, o.Confirm(firstCashier))

		err := o.Confirm(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrAlreadyProcessed)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.True(t, o.Cashier().IsEqual(firstCashier)) // original cashier preserved
	})

	t.Run("should fail with invalid cashier ID", func(t *testing.T) {
		o := newPendingOrder(t)
		var invalidID kernel.UUID

		err := o.Confirm(invalidID)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Cashier())
	})
}

func TestOrder_ReaffirmPayment(t *testing.T) {
	o, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Alice", order.PaymentOnlinePayment, makeLines(t))
	require.NoError(t, err)

	t.Run("should be a no-op while pending", func(t *testing.T) {
		require.NoError(t, o.ReaffirmPayment())
		require.NoError(t, o.ReaffirmPayment())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail once cashier confirmed", func(t *testing.T) {
		require.NoError(t, o.Confirm(kernel.NewUUID()))

		require.ErrorIs(t, o.ReaffirmPayment(), order.ErrAlreadyProcessed)
	})
}

func TestOrder_AdvanceKitchen(t *testing.T) {
	newConfirmedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Alice", order.PaymentCash, makeLines(t))
		require.NoError(t, err)
		require.NoError(t, o.Confirm(kernel.NewUUID()))
		return o
	}

	t.Run("should walk the kitchen pipeline step by step", func(t *testing.T) {
		o := newConfirmedOrder(t)

		require.NoError(t, o.AdvanceKitchen(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.AdvanceKitchen(order.Ready))
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.AdvanceKitchen(order.Completed))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should allow forward jumps", func(t *testing.T) {
		o := newConfirmedOrder(t)

		require.NoError(t, o.AdvanceKitchen(order.Ready))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject backward moves", func(t *testing.T) {
		o := newConfirmedOrder(t)
		require.NoError(t, o.AdvanceKitchen(order.Ready))

		err := o.AdvanceKitchen(order.Preparing)

		require.ErrorIs(t, err, order.ErrAlreadyProcessed)
		assert.Equal(t, order.Ready, o.Status()) // status unchanged
	})

	t.Run("should reject repeating the current status", func(t *testing.T) {
		o := newConfirmedOrder(t)
		require.NoError(t, o.AdvanceKitchen(order.Preparing))

		require.ErrorIs(t, o.AdvanceKitchen(order.Preparing), order.ErrAlreadyProcessed)
	})

	t.Run("should reject pending as a kitchen target", func(t *testing.T) {
		o := newConfirmedOrder(t)

		err := o.AdvanceKitchen(order.Pending)

		require.Error(t, err)
		assert.NotErrorIs(t, err, order.ErrAlreadyProcessed)
		assert.Contains(t, err.Error(), "not a kitchen status")
	})
}

func TestOrder_ConfirmCollection(t *testing.T) {
	newReadyOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Alice", order.PaymentCash, makeLines(t))
		require.NoError(t, err)
		require.NoError(t, o.Confirm(kernel.NewUUID()))
		require.NoError(t, o.AdvanceKitchen(order.Ready))
		return o
	}

	t.Run("should complete ready order", func(t *testing.T) {
		o := newReadyOrder(t)

		require.NoError(t, o.ConfirmCollection())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should fail to collect twice", func(t *testing.T) {
		o := newReadyOrder(t)
		require.NoError(t, o.ConfirmCollection())

		err := o.ConfirmCollection()

		require.ErrorIs(t, err, order.ErrAlreadyProcessed)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should fail before the kitchen finished", func(t *testing.T) {
		o, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Alice", order.PaymentCash, makeLines(t))
		require.NoError(t, err)

		err = o.ConfirmCollection()

		require.Error(t, err)
		assert.NotErrorIs(t, err, order.ErrAlreadyProcessed)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Ownership(t *testing.T) {
	customerID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	o, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, branchID,
		"Alice", order.PaymentCash, makeLines(t))
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(customerID))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
	assert.True(t, o.BelongsToBranch(branchID))
	assert.False(t, o.BelongsToBranch(kernel.NewUUID()))

	walkIn, err := order.NewWalkInOrder(kernel.NewUUID(), kernel.NewUUID(), branchID,
		"Walk-in", makeLines(t))
	require.NoError(t, err)
	assert.False(t, walkIn.IsOwnedBy(customerID))
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_LinesCopy(t *testing.T) {
	o, err := order.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Alice", order.PaymentCash, makeLines(t))
	require.NoError(t, err)

	lines := o.Lines()
	lines[0] = order.Line{}

	assert.NoError(t, o.Lines()[0].Validate()) // internal state untouched
}
