package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// GetRestaurantRatingQueryHandler retrieves a restaurant's rating summary
// from the database in one round trip.
type GetRestaurantRatingQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantRatingQueryHandler creates a handler for rating summaries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantRatingQueryHandler(db *gorm.DB) GetRestaurantRatingQueryHandler {
	return GetRestaurantRatingQueryHandler{db: db}
}

// Handle executes the query for one restaurant's rating summary.
// Returns ObjectNotFound when the restaurant does not exist.
func (h GetRestaurantRatingQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantRatingQuery,
) (GetRestaurantRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantRatingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.rating,
			COUNT(rv.id)
		FROM restaurants r
		LEFT JOIN reviews rv ON rv.restaurant_id = r.id
		WHERE r.id = ?
		GROUP BY r.id, r.name, r.rating
	`, query.RestaurantID().Bytes()).Row()

	var (
		id          uuid.UUID
		name        string
		rating      sql.NullFloat64
		reviewCount int
	)
	if err := row.Scan(&id, &name, &rating, &reviewCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRestaurantRatingQueryResponse{}, errs.NewObjectNotFoundError(
				"restaurantID", query.RestaurantID().String(),
			)
		}
		return GetRestaurantRatingQueryResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetRestaurantRatingQueryResponse{}, err
	}

	resp := GetRestaurantRatingQueryResponse{
		ID:          restaurantID,
		Name:        name,
		ReviewCount: reviewCount,
	}
	if rating.Valid {
		resp.Rating = &rating.Float64
	}

	return resp, nil
}
