package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrEditReviewCommandIsNotConstructed = errors.New(
	"EditReviewCommand must be created via NewEditReviewCommand constructor",
)

// EditReviewCommand represents a request to change a review's score and
// comment. The requesting client is carried so ownership can be enforced:
// only the review's author may edit it.
type EditReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	clientID kernel.UUID
	score    review.Score
	comment  string

	guard guard.ConstructorGuard
}

// NewEditReviewCommand creates a command to edit a review.
func NewEditReviewCommand(
	reviewID, clientID kernel.UUID,
	score review.Score,
	comment string,
) (EditReviewCommand, error) {
	editCommand := EditReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setReviewID(reviewID),
		editCommand.setClientID(clientID),
		editCommand.setScore(score),
		editCommand.setComment(comment),
	); err != nil {
		return EditReviewCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EditReviewCommand) Validate() error {
	return c.guard.Validate(ErrEditReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to edit.
func (c EditReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ClientID returns the requesting client's identifier.
func (c EditReviewCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Score returns the replacement score.
func (c EditReviewCommand) Score() review.Score {
	return c.score
}

// Comment returns the replacement comment.
func (c EditReviewCommand) Comment() string {
	return c.comment
}

func (c *EditReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *EditReviewCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *EditReviewCommand) setScore(score review.Score) error {
	if err := score.Validate(); err != nil {
		return err
	}

	c.score = score
	return nil
}

func (c *EditReviewCommand) setComment(comment string) error {
	if len(comment) > review.MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, review.MaxCommentLength)
	}

	c.comment = comment
	return nil
}
