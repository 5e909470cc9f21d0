package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, raw string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(raw)
	require.NoError(t, err)
	return id
}

func TestNewOrder(t *testing.T) {
	orderDate := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("creates_valid_order", func(t *testing.T) {
		items := []order.Item{
			{ProductName: "Tomato", TotalPrice: decimal.NewFromInt(450)},
			{ProductName: "Okra", TotalPrice: decimal.NewFromInt(120)},
		}

		o, err := order.NewOrder(mustOrderID(t, "ORD-1"), "Green Basket", orderDate, kernel.PaymentPaid, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-1", o.ID().String())
		assert.Equal(t, "Green Basket", o.CustomerName())
		assert.Equal(t, orderDate, o.OrderDate())
		assert.True(t, o.PaymentStatus().IsPaid())
		assert.Equal(t, []string{"Tomato", "Okra"}, o.ProductNames())
	})

	t.Run("rejects_invalid_order_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.OrderID{}, "X", orderDate, kernel.PaymentPending, nil)

		require.Error(t, err)
	})

	t.Run("rejects_zero_order_date", func(t *testing.T) {
		_, err := order.NewOrder(mustOrderID(t, "ORD-2"), "X", time.Time{}, kernel.PaymentPending, nil)

		require.Error(t, err)
	})

	t.Run("rejects_unknown_payment_status", func(t *testing.T) {
		_, err := order.NewOrder(mustOrderID(t, "ORD-3"), "X", orderDate, kernel.PaymentUnknown, nil)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	orderDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	a, _ := order.NewOrder(mustOrderID(t, "ORD-1"), "A", orderDate, kernel.PaymentPaid, nil)
	b, _ := order.NewOrder(mustOrderID(t, "ORD-1"), "B", orderDate, kernel.PaymentPending, nil)
	c, _ := order.NewOrder(mustOrderID(t, "ORD-2"), "A", orderDate, kernel.PaymentPaid, nil)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
