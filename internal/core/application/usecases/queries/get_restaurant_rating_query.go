package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantRatingQueryIsNotConstructed = errors.New(
	"GetRestaurantRatingQuery must be created via NewGetRestaurantRatingQuery constructor",
)

// GetRestaurantRatingQuery retrieves a restaurant's rating summary: its
// current mean rating and how many reviews back it.
//
// Example:
//
//	query, _ := NewGetRestaurantRatingQuery(restaurantID)
//	handler := NewGetRestaurantRatingQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if summary.Rating == nil {
//	    fmt.Printf("%s has no reviews yet\n", summary.Name)
//	}
type GetRestaurantRatingQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantRatingQuery creates a query for a restaurant rating summary.
func NewGetRestaurantRatingQuery(restaurantID kernel.UUID) (GetRestaurantRatingQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantRatingQuery{}, err
	}

	return GetRestaurantRatingQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantRatingQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose rating is summarized.
func (q GetRestaurantRatingQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantRatingQueryResponse is the rating summary read model.
// Rating is nil when the restaurant has no reviews.
type GetRestaurantRatingQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Rating      *float64
	ReviewCount int
}
