package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// CreateReviewCommandHandler handles review creation. A duplicate review by
// the same client for the same restaurant fails with a conflict; otherwise
// the review is stored and the restaurant's rating is recomputed in the same
// transaction.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	aggregator services.RatingAggregator
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	aggregator services.RatingAggregator,
) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

// Handle processes the review creation command.
func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
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
	exists, err := reviewRepo.Exists(ctx, cmd.ClientID(), cmd.RestaurantID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError(
			fmt.Sprintf("client %s has already reviewed restaurant %s",
				cmd.ClientID(), cmd.RestaurantID()),
		)
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(), cmd.ClientID(), cmd.RestaurantID(), cmd.Score(), cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = recalculateRestaurantRating(ctx, uow, h.aggregator, cmd.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
