// Package reviewrepo provides data transfer objects and mapping functions for review persistence.
// A composite unique index on (client_id, restaurant_id) backs the
// one-review-per-client-per-restaurant rule at the storage level.
package reviewrepo

import (
	"time"

	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
)

// ReviewDTO represents the database structure for persisting review aggregates.
type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_client_restaurant"`
	RestaurantID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_client_restaurant"`
	Score        int
	Comment      string `gorm:"size:1000"`
	Response     string `gorm:"size:1000"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           aggregate.ID().Bytes(),
		ClientID:     aggregate.ClientID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Score:        aggregate.Score().Value(),
		Comment:      aggregate.Comment(),
		Response:     aggregate.Response(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a review domain aggregate.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	score, err := review.ScoreFromInt(dto.Score)
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id, clientID, restaurantID, score,
		dto.Comment, dto.Response, dto.CreatedAt, dto.UpdatedAt,
	)
}
