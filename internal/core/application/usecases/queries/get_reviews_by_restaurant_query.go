package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetReviewsByRestaurantQueryIsNotConstructed = errors.New(
	"GetReviewsByRestaurantQuery must be created via NewGetReviewsByRestaurantQuery constructor",
)

// GetReviewsByRestaurantQuery retrieves a restaurant's reviews, newest first.
type GetReviewsByRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewsByRestaurantQuery creates a query for a restaurant's reviews.
func NewGetReviewsByRestaurantQuery(restaurantID kernel.UUID) (GetReviewsByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetReviewsByRestaurantQuery{}, err
	}

	return GetReviewsByRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReviewsByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose reviews are listed.
func (q GetReviewsByRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// ReviewResponse is one review in the listing read model.
type ReviewResponse struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	Score     review.Score
	Comment   string
	Response  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
