package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
)

// DeleteReviewCommand represents a request to remove a review. Removing the
// last review of a restaurant clears its rating entirely.
type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand creates a command to delete a review.
func NewDeleteReviewCommand(reviewID kernel.UUID) (DeleteReviewCommand, error) {
	deleteCommand := DeleteReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setReviewID(reviewID); err != nil {
		return DeleteReviewCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to delete.
func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c *DeleteReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}
