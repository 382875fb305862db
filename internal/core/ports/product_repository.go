package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Stock reservations go through GetForUpdate plus a version-checked Update so
// that two concurrent orders can never reserve the same units.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate. The write
	// is guarded by the aggregate's version: it fails with a version
	// conflict when the stored row has moved on since the aggregate was
	// loaded.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product aggregate and locks its row for the
	// remainder of the transaction. Used by stock reservation so that
	// concurrent reservations serialize on the product.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByRestaurant retrieves every product offered by the given
	// restaurant.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*product.Product, error)
}
