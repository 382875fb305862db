package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// ReconcileRatingsCommandHandler recomputes every restaurant's rating in a
// single transaction.
type ReconcileRatingsCommandHandler struct {
	uowFactory ReviewUoWFactory
	aggregator services.RatingAggregator
}

// NewReconcileRatingsCommandHandler creates a handler for rating reconciliation.
func NewReconcileRatingsCommandHandler(
	uowFactory ReviewUoWFactory,
	aggregator services.RatingAggregator,
) ReconcileRatingsCommandHandler {
	return ReconcileRatingsCommandHandler{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

// Handle walks all restaurants and rewrites each rating from the current
// review set.
func (h *ReconcileRatingsCommandHandler) Handle(ctx context.Context, cmd ReconcileRatingsCommand) error {
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

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	for _, restaurant := range restaurants {
		if err := recalculateRestaurantRating(ctx, uow, h.aggregator, restaurant.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
