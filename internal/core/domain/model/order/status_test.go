package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"PENDING":   order.Pending,
			"CONFIRMED": order.Confirmed,
			"PREPARING": order.Preparing,
			"READY":     order.Ready,
			"COMPLETED": order.Completed,
		}

		for str, expected := range cases {
			status, err := order.StatusFromString(str)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject invalid strings", func(t *testing.T) {
		for _, str := range []string{"", "UNKNOWN", "pending", "CANCELLED", "DONE"} {
			status, err := order.StatusFromString(str)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready, order.Completed,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
			require.Error(t, s.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "COMPLETED", order.Completed.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow every strictly forward move", func(t *testing.T) {
		pipeline := []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready, order.Completed,
		}

		for i, from := range pipeline {
			for _, to := range pipeline[i+1:] {
				got, err := from.TransitionTo(to)

				require.NoError(t, err, "from %s to %s", from, to)
				assert.Equal(t, to, got)
			}
		}
	})

	t.Run("should reject same status and any backward move", func(t *testing.T) {
		pipeline := []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready, order.Completed,
		}

		for i, from := range pipeline {
			for _, to := range pipeline[:i+1] {
				got, err := from.TransitionTo(to)

				require.ErrorIs(t, err, order.ErrAlreadyProcessed, "from %s to %s", from, to)
				assert.Equal(t, order.Unknown, got)
			}
		}
	})

	t.Run("should reject unknown source or target", func(t *testing.T) {
		_, err := order.Unknown.TransitionTo(order.Confirmed)
		require.Error(t, err)
		assert.NotErrorIs(t, err, order.ErrAlreadyProcessed)

		_, err = order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
		assert.NotErrorIs(t, err, order.ErrAlreadyProcessed)
	})
}

func TestKitchenTargets(t *testing.T) {
	targets := order.KitchenTargets()

	assert.Equal(t, []order.Status{order.Confirmed, order.Preparing, order.Ready, order.Completed}, targets)
	assert.NotContains(t, targets, order.Pending)
}
