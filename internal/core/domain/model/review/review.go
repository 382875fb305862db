// Package review contains the Review aggregate and its ordinal Score. A
// client may review a restaurant at most once; every review mutation feeds
// the restaurant's rating aggregate.
package review

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// MaxCommentLength bounds the free-text comment and response fields.
const MaxCommentLength = 1000

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is a client's scored feedback on a restaurant, optionally carrying a
// comment and a restaurant-side response. Only the owning client may edit the
// score and comment; the response is set restaurant-side and does not touch
// the rating aggregate.
type Review struct {
	id           kernel.UUID
	clientID     kernel.UUID
	restaurantID kernel.UUID
	score        Score
	comment      string
	response     string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewReview creates a review with the given score and optional comment.
func NewReview(id, clientID, restaurantID kernel.UUID, score Score, comment string) (*Review, error) {
	now := time.Now().UTC()
	return RestoreReview(id, clientID, restaurantID, score, comment, "", now, now)
}

// RestoreReview reconstructs a review from persistence, including the
// restaurant response and timestamps.
func RestoreReview(
	id, clientID, restaurantID kernel.UUID,
	score Score,
	comment, response string,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	r := &Review{
		response:      response,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setClientID(clientID),
		r.setRestaurantID(restaurantID),
		r.setScore(score),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Review was created through a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ClientID returns the authoring client's identifier.
func (r *Review) ClientID() kernel.UUID {
	return r.clientID
}

// RestaurantID returns the reviewed restaurant's identifier.
func (r *Review) RestaurantID() kernel.UUID {
	return r.restaurantID
}

// Score returns the ordinal score.
func (r *Review) Score() Score {
	return r.score
}

// Comment returns the client's free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// Response returns the restaurant's response, empty when none was given.
func (r *Review) Response() string {
	return r.response
}

// CreatedAt returns the creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last-update timestamp.
func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

// Edit replaces the score and comment. Only the owning client may edit;
// any other client fails with a business-rule violation.
func (r *Review) Edit(clientID kernel.UUID, score Score, comment string) error {
	if !r.clientID.IsEqual(clientID) {
		return errs.NewBusinessRuleViolationError("a client cannot edit another client's review")
	}

	if err := errors.Join(r.setScore(score), r.setComment(comment)); err != nil {
		return err
	}

	r.updatedAt = time.Now().UTC()
	return nil
}

// Respond sets the restaurant-side response. The score, and therefore the
// rating aggregate, is untouched.
func (r *Review) Respond(response string) error {
	if len(response) > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("response length", len(response), 0, MaxCommentLength)
	}

	r.response = response
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.clientID = id
	return nil
}

func (r *Review) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.restaurantID = id
	return nil
}

func (r *Review) setScore(score Score) error {
	if err := score.Validate(); err != nil {
		return err
	}
	r.score = score
	return nil
}

func (r *Review) setComment(comment string) error {
	if len(comment) > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, MaxCommentLength)
	}
	r.comment = comment
	return nil
}
