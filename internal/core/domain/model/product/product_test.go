package product_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "", price, stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("availability derived from stock", func(t *testing.T) {
		assert.True(t, newProduct(t, 3).IsAvailable())
		assert.False(t, newProduct(t, 0).IsAvailable())
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		price, err := kernel.NewMoneyFromString("10.00")
		require.NoError(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Margherita", "", price, -1)
		require.Error(t, err)
	})

	t.Run("new product starts at version zero", func(t *testing.T) {
		assert.Equal(t, 0, newProduct(t, 3).Version())
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("decrements stock by requested quantity", func(t *testing.T) {
		p := newProduct(t, 5)
		require.NoError(t, p.Reserve(2))
		assert.Equal(t, 3, p.Stock())
		assert.True(t, p.IsAvailable())
	})

	t.Run("reserving the last units makes product unavailable", func(t *testing.T) {
		p := newProduct(t, 2)
		require.NoError(t, p.Reserve(2))
		assert.Equal(t, 0, p.Stock())
		assert.False(t, p.IsAvailable())
	})

	t.Run("insufficient stock fails with conflict and leaves stock untouched", func(t *testing.T) {
		p := newProduct(t, 1)
		err := p.Reserve(2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 1, p.Stock())
		assert.True(t, p.IsAvailable())
	})

	t.Run("unavailable product fails with conflict", func(t *testing.T) {
		p := newProduct(t, 0)
		err := p.Reserve(1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 5)
		require.Error(t, p.Reserve(0))
		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_Restock(t *testing.T) {
	t.Run("returns units and restores availability", func(t *testing.T) {
		p := newProduct(t, 1)
		require.NoError(t, p.Reserve(1))
		require.False(t, p.IsAvailable())

		require.NoError(t, p.Restock(1))
		assert.Equal(t, 1, p.Stock())
		assert.True(t, p.IsAvailable())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 1)
		require.Error(t, p.Restock(0))
	})
}

func TestProduct_BelongsTo(t *testing.T) {
	restaurantID := kernel.NewUUID()
	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), restaurantID, "Margherita", "", price, 1)
	require.NoError(t, err)

	assert.True(t, p.BelongsTo(restaurantID))
	assert.False(t, p.BelongsTo(kernel.NewUUID()))
}
