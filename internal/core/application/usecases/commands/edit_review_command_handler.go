package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// EditReviewCommandHandler handles review edits. Ownership is enforced by
// the aggregate; a successful edit recomputes the restaurant's rating in
// the same transaction.
type EditReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	aggregator services.RatingAggregator
}

// NewEditReviewCommandHandler creates a handler for review edits.
func NewEditReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	aggregator services.RatingAggregator,
) EditReviewCommandHandler {
	return EditReviewCommandHandler{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

// Handle processes the review edit command.
func (h *EditReviewCommandHandler) Handle(ctx context.Context, cmd EditReviewCommand) error {
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

	if err = aggregate.Edit(cmd.ClientID(), cmd.Score(), cmd.Comment()); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = recalculateRestaurantRating(ctx, uow, h.aggregator, aggregate.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
