package services

import (
	"fooddelivery/internal/core/domain/model/review"
)

// RatingAggregator is a domain service that derives a restaurant's rating
// from its reviews.
//
// The rating is the arithmetic mean of all review scores. A restaurant with
// no reviews has no rating at all, which is distinct from a rating of zero;
// the aggregator expresses that absence with a nil result.
//
// Example usage:
//
//	aggregator := NewRatingAggregator()
//	rating := aggregator.Average(reviews)
//	restaurant.SetRating(rating)
type RatingAggregator struct{}

// NewRatingAggregator creates a new RatingAggregator instance.
func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Average computes the mean score of the given reviews.
//
// Returns:
//   - *float64: The mean of all scores, or nil when there are no reviews
func (r RatingAggregator) Average(reviews []*review.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}

	var sum int
	for _, rv := range reviews {
		sum += rv.Score().Value()
	}

	average := float64(sum) / float64(len(reviews))
	return &average
}
