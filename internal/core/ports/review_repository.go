package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
// A client may hold at most one review per restaurant; Exists supports the
// duplicate check before insertion.
type ReviewRepository interface {
	// Add persists a new review aggregate to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// Update persists changes to an existing review aggregate.
	Update(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// Delete removes a review from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByRestaurant retrieves every review of the given restaurant,
	// newest first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*review.Review, error)

	// Exists reports whether the client has already reviewed the
	// restaurant.
	Exists(ctx context.Context, clientID, restaurantID kernel.UUID) (bool, error)
}
