package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and listing orders by the
// parties involved.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing
	// its item list with the aggregate's current one.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its items from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByClient retrieves every order placed by the given client,
	// newest first.
	GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)

	// GetAllByRestaurant retrieves every order directed at the given
	// restaurant, newest first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)
}
