package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *account.Restaurant) error

	// Update persists changes to an existing restaurant aggregate,
	// including its derived rating.
	Update(ctx context.Context, aggregate *account.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Restaurant, error)

	// GetForUpdate retrieves a restaurant aggregate and locks its row for
	// the remainder of the transaction. Used by rating recomputation so
	// concurrent review writes serialize on the restaurant.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*account.Restaurant, error)

	// GetAll retrieves every restaurant. Used by the periodic rating
	// reconciliation job.
	GetAll(ctx context.Context) ([]*account.Restaurant, error)
}
