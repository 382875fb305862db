package account_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(-23.5505, -46.6333)
	require.NoError(t, err)
	return p
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func TestNewRestaurant(t *testing.T) {
	t.Run("should create active restaurant without rating", func(t *testing.T) {
		r, err := account.NewRestaurant(kernel.NewUUID(), "Cantina", testLocation(t), 11*60, 23*60)
		require.NoError(t, err)

		assert.True(t, r.IsActive())
		assert.Nil(t, r.Rating())
		assert.Equal(t, "Cantina", r.Name())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := account.NewRestaurant(kernel.NewUUID(), "", testLocation(t), 0, 0)
		require.Error(t, err)
	})

	t.Run("should reject hours out of range", func(t *testing.T) {
		_, err := account.NewRestaurant(kernel.NewUUID(), "Cantina", testLocation(t), -1, 600)
		require.Error(t, err)

		_, err = account.NewRestaurant(kernel.NewUUID(), "Cantina", testLocation(t), 600, 24*60)
		require.Error(t, err)
	})

	t.Run("should reject zero location", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := account.NewRestaurant(kernel.NewUUID(), "Cantina", zero, 0, 0)
		require.Error(t, err)
	})
}

func TestRestaurant_IsOpenAt(t *testing.T) {
	t.Run("regular hours", func(t *testing.T) {
		r, err := account.NewRestaurant(kernel.NewUUID(), "Cantina", testLocation(t), 11*60, 23*60)
		require.NoError(t, err)

		assert.False(t, r.IsOpenAt(at(10, 59)))
		assert.True(t, r.IsOpenAt(at(11, 0)))
		assert.True(t, r.IsOpenAt(at(22, 59)))
		assert.False(t, r.IsOpenAt(at(23, 0)))
	})

	t.Run("hours spanning midnight", func(t *testing.T) {
		r, err := account.NewRestaurant(kernel.NewUUID(), "Night Owl", testLocation(t), 18*60, 2*60)
		require.NoError(t, err)

		assert.True(t, r.IsOpenAt(at(23, 30)))
		assert.True(t, r.IsOpenAt(at(1, 0)))
		assert.False(t, r.IsOpenAt(at(12, 0)))
	})

	t.Run("equal open and close means always open", func(t *testing.T) {
		r, err := account.NewRestaurant(kernel.NewUUID(), "NonStop", testLocation(t), 0, 0)
		require.NoError(t, err)

		assert.True(t, r.IsOpenAt(at(0, 0)))
		assert.True(t, r.IsOpenAt(at(12, 0)))
	})
}

func TestRestaurant_SetRating(t *testing.T) {
	r, err := account.NewRestaurant(kernel.NewUUID(), "Cantina", testLocation(t), 0, 0)
	require.NoError(t, err)

	rating := 4.5
	r.SetRating(&rating)
	require.NotNil(t, r.Rating())
	assert.InDelta(t, 4.5, *r.Rating(), 1e-9)

	r.SetRating(nil)
	assert.Nil(t, r.Rating())
}

func TestClient(t *testing.T) {
	t.Run("should create active client", func(t *testing.T) {
		c, err := account.NewClient(kernel.NewUUID(), "Maria", testLocation(t))
		require.NoError(t, err)
		assert.True(t, c.IsActive())
	})

	t.Run("activation toggles", func(t *testing.T) {
		c, err := account.NewClient(kernel.NewUUID(), "Maria", testLocation(t))
		require.NoError(t, err)

		c.Deactivate()
		assert.False(t, c.IsActive())
		c.Activate()
		assert.True(t, c.IsActive())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c account.Client
		require.Error(t, c.Validate())
	})
}
