package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a client's request to review a restaurant
// with a 1-5 score and an optional comment. A client may review a restaurant
// at most once; the handler rejects duplicates with a conflict.
//
// Example:
//
//	score, _ := review.ScoreFromInt(4)
//	cmd, err := NewCreateReviewCommand(reviewID, clientID, restaurantID, score, "great pizza")
//	if err != nil {
//	    return fmt.Errorf("invalid review data: %w", err)
//	}
//
//	handler := NewCreateReviewCommandHandler(uowFactory, services.NewRatingAggregator())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create review: %w", err)
//	}
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID     kernel.UUID
	clientID     kernel.UUID
	restaurantID kernel.UUID
	score        review.Score
	comment      string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review a restaurant.
func NewCreateReviewCommand(
	reviewID, clientID, restaurantID kernel.UUID,
	score review.Score,
	comment string,
) (CreateReviewCommand, error) {
	reviewCommand := CreateReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setClientID(clientID),
		reviewCommand.setRestaurantID(restaurantID),
		reviewCommand.setScore(score),
		reviewCommand.setComment(comment),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the unique identifier for the review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ClientID returns the authoring client's identifier.
func (c CreateReviewCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RestaurantID returns the reviewed restaurant's identifier.
func (c CreateReviewCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Score returns the review score.
func (c CreateReviewCommand) Score() review.Score {
	return c.score
}

// Comment returns the review comment.
func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateReviewCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateReviewCommand) setScore(score review.Score) error {
	if err := score.Validate(); err != nil {
		return err
	}

	c.score = score
	return nil
}

func (c *CreateReviewCommand) setComment(comment string) error {
	if len(comment) > review.MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, review.MaxCommentLength)
	}

	c.comment = comment
	return nil
}
