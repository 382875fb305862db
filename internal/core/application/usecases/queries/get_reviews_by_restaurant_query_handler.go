package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
)

// GetReviewsByRestaurantQueryHandler retrieves a restaurant's reviews from
// the database, newest first.
type GetReviewsByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewsByRestaurantQueryHandler creates a handler for review listings.
// Requires a GORM database connection for query execution.
func NewGetReviewsByRestaurantQueryHandler(db *gorm.DB) GetReviewsByRestaurantQueryHandler {
	return GetReviewsByRestaurantQueryHandler{db: db}
}

// Handle executes the query to list a restaurant's reviews.
func (h GetReviewsByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetReviewsByRestaurantQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reviews := make([]ReviewResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			score,
			comment,
			response,
			created_at,
			updated_at
		FROM reviews
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, clientID         uuid.UUID
			score                int
			comment, response    string
			createdAt, updatedAt time.Time
		)
		if err = rows.Scan(&id, &clientID, &score, &comment, &response, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		client, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}

		reviews = append(reviews, ReviewResponse{
			ID:        reviewID,
			ClientID:  client,
			Score:     review.Score(score),
			Comment:   comment,
			Response:  response,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
