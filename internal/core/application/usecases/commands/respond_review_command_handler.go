package commands

import (
	"context"
)

// RespondReviewCommandHandler handles restaurant responses to reviews.
// Only the response text changes, so no rating recomputation happens here.
type RespondReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewRespondReviewCommandHandler creates a handler for review responses.
func NewRespondReviewCommandHandler(uowFactory ReviewUoWFactory) RespondReviewCommandHandler {
	return RespondReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review response command.
func (h *RespondReviewCommandHandler) Handle(ctx context.Context, cmd RespondReviewCommand) error {
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

	if err = aggregate.Respond(cmd.Response()); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
