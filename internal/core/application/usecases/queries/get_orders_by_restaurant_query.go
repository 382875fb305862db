package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersByRestaurantQueryIsNotConstructed = errors.New(
	"GetOrdersByRestaurantQuery must be created via NewGetOrdersByRestaurantQuery constructor",
)

// GetOrdersByRestaurantQuery retrieves every order directed at a restaurant,
// newest first.
type GetOrdersByRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByRestaurantQuery creates a query for a restaurant's incoming orders.
func NewGetOrdersByRestaurantQuery(restaurantID kernel.UUID) (GetOrdersByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrdersByRestaurantQuery{}, err
	}

	return GetOrdersByRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetOrdersByRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
