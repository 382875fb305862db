package order_test

import (
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, quantity int, unitPrice string) order.Item {
	t.Helper()
	i, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, money(t, unitPrice))
	require.NoError(t, err)
	return i
}

func TestNewItem(t *testing.T) {
	t.Run("subtotal is unit price times quantity", func(t *testing.T) {
		i := item(t, 3, "4.50")
		assert.True(t, i.Subtotal().IsEqual(money(t, "13.50")))
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 0, money(t, "4.50"))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var i order.Item
		require.Error(t, i.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("example order totals 30.00", func(t *testing.T) {
		// Two items, 2 @ 10.00 and 1 @ 5.00, fee 5.00, no discount.
		items := []order.Item{item(t, 2, "10.00"), item(t, 1, "5.00")}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, money(t, "5.00"), kernel.ZeroMoney(), "",
		)
		require.NoError(t, err)

		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.ItemsTotal().IsEqual(money(t, "25.00")))
		assert.True(t, o.Total().IsEqual(money(t, "30.00")))
	})

	t.Run("discount reduces the total", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item(t, 1, "20.00")}, money(t, "5.00"), money(t, "3.00"), "",
		)
		require.NoError(t, err)
		assert.True(t, o.Total().IsEqual(money(t, "22.00")))
	})

	t.Run("total is clamped at zero", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item(t, 1, "10.00")}, money(t, "5.00"), money(t, "100.00"), "",
		)
		require.NoError(t, err)
		assert.True(t, o.Total().IsZero())
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, money(t, "5.00"), kernel.ZeroMoney(), "",
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})

	t.Run("rejects notes over the length limit", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item(t, 1, "10.00")}, kernel.ZeroMoney(), kernel.ZeroMoney(),
			strings.Repeat("x", order.MaxNotesLength+1),
		)
		require.Error(t, err)
	})
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item(t, 2, "10.00"), item(t, 1, "5.00")},
		money(t, "5.00"), kernel.ZeroMoney(), "",
	)
	require.NoError(t, err)
	return o
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("follows the state machine", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Dispatched))
		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		o := newPendingOrder(t)
		err := o.ChangeStatus(order.Delivered)
		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels a pending order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancelling twice reports already cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Cancel()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.ErrorContains(t, err, "already cancelled")
	})

	t.Run("cannot cancel a delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Dispatched))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		require.Error(t, o.Cancel())
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("replaces items and recomputes the total", func(t *testing.T) {
		o := newPendingOrder(t)
		require.True(t, o.Total().IsEqual(money(t, "30.00")))

		err := o.ReplaceItems([]order.Item{item(t, 1, "8.00")}, "no onions")
		require.NoError(t, err)

		assert.True(t, o.Total().IsEqual(money(t, "13.00")))
		assert.Equal(t, "no onions", o.Notes())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("keeps delivery fee and discount", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item(t, 1, "20.00")}, money(t, "7.25"), money(t, "2.00"), "",
		)
		require.NoError(t, err)

		require.NoError(t, o.ReplaceItems([]order.Item{item(t, 2, "6.00")}, ""))
		// 12.00 + 7.25 - 2.00
		assert.True(t, o.Total().IsEqual(money(t, "17.25")))
	})

	t.Run("allowed while preparing", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))

		require.NoError(t, o.ReplaceItems([]order.Item{item(t, 1, "8.00")}, ""))
	})

	t.Run("rejected once dispatched", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Dispatched))

		err := o.ReplaceItems([]order.Item{item(t, 1, "8.00")}, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.True(t, o.Total().IsEqual(money(t, "30.00")))
	})

	t.Run("rejected when cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.ReplaceItems([]order.Item{item(t, 1, "8.00")}, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		o := newPendingOrder(t)
		require.Error(t, o.ReplaceItems(nil, ""))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("keeps the persisted total", func(t *testing.T) {
		createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		items := []order.Item{item(t, 2, "10.00")}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, createdAt, order.Confirmed,
			money(t, "5.00"), kernel.ZeroMoney(), money(t, "25.00"), "ring twice",
		)
		require.NoError(t, err)

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, o.Total().IsEqual(money(t, "25.00")))
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item(t, 1, "10.00")}, time.Now(), order.Unknown,
			kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), "",
		)
		require.Error(t, err)
	})
}
