package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/review"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func testClient(t *testing.T) *account.Client {
	t.Helper()
	c, err := account.NewClient(kernel.NewUUID(), "Ana", geoPoint(t, -23.5505, -46.6333))
	require.NoError(t, err)
	return c
}

func inactiveClient(t *testing.T) *account.Client {
	t.Helper()
	c := testClient(t)
	c.Deactivate()
	return c
}

// testRestaurant is always open (opensAt == closesAt) so handler tests do
// not depend on wall-clock time.
func testRestaurant(t *testing.T) *account.Restaurant {
	t.Helper()
	r, err := account.NewRestaurant(kernel.NewUUID(), "Cantina", geoPoint(t, -23.5510, -46.6340), 0, 0)
	require.NoError(t, err)
	return r
}

func testProduct(t *testing.T, restaurantID kernel.UUID, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), restaurantID, "Margherita", "", money(t, price), stock)
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, clientID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, "10.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), clientID, restaurantID,
		[]order.Item{item}, money(t, "5.00"), kernel.ZeroMoney(), "",
	)
	require.NoError(t, err)
	return o
}

func testReview(t *testing.T, clientID, restaurantID kernel.UUID, score review.Score) *review.Review {
	t.Helper()
	r, err := review.NewReview(kernel.NewUUID(), clientID, restaurantID, score, "")
	require.NoError(t, err)
	return r
}
