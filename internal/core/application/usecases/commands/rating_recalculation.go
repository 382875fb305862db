package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
)

// recalculateRestaurantRating recomputes and persists a restaurant's rating
// from its current reviews. The restaurant row is locked so that concurrent
// review writes serialize on the rating update. Call after the review
// mutation, inside the same transaction.
func recalculateRestaurantRating(
	ctx context.Context,
	uow ReviewUoW,
	aggregator services.RatingAggregator,
	restaurantID kernel.UUID,
) error {
	restaurant, err := uow.RestaurantRepository().GetForUpdate(ctx, restaurantID)
	if err != nil {
		return err
	}

	reviews, err := uow.ReviewRepository().GetAllByRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	restaurant.SetRating(aggregator.Average(reviews))
	return uow.RestaurantRepository().Update(ctx, restaurant)
}
