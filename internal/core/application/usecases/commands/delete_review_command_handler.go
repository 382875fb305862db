package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// DeleteReviewCommandHandler handles review removal. The restaurant's
// rating is recomputed from the remaining reviews in the same transaction;
// removing the last review clears the rating.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	aggregator services.RatingAggregator
}

// NewDeleteReviewCommandHandler creates a handler for review deletion.
func NewDeleteReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	aggregator services.RatingAggregator,
) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

// Handle processes the review deletion command.
func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	aggregate, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	if err = reviewRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = recalculateRestaurantRating(ctx, uow, h.aggregator, aggregate.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
