package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrRespondReviewCommandIsNotConstructed = errors.New(
		"RespondReviewCommand must be created via NewRespondReviewCommand constructor",
	)
	ErrResponseIsRequired = errors.New("response is required")
)

// RespondReviewCommand represents a restaurant's request to attach a public
// response to a review. The score is untouched, so the rating is not
// recomputed.
type RespondReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	response string

	guard guard.ConstructorGuard
}

// NewRespondReviewCommand creates a command to respond to a review.
func NewRespondReviewCommand(reviewID kernel.UUID, response string) (RespondReviewCommand, error) {
	respondCommand := RespondReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		respondCommand.setReviewID(reviewID),
		respondCommand.setResponse(response),
	); err != nil {
		return RespondReviewCommand{}, err
	}

	return respondCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondReviewCommand) Validate() error {
	return c.guard.Validate(ErrRespondReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to respond to.
func (c RespondReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// Response returns the restaurant's response text.
func (c RespondReviewCommand) Response() string {
	return c.response
}

func (c *RespondReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *RespondReviewCommand) setResponse(response string) error {
	if response == "" {
		return ErrResponseIsRequired
	}
	if len(response) > review.MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("response length", len(response), 0, review.MaxCommentLength)
	}

	c.response = response
	return nil
}
