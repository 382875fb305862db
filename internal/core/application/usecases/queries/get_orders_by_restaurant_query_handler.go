package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// GetOrdersByRestaurantQueryHandler retrieves a restaurant's incoming orders
// from the database, newest first.
type GetOrdersByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByRestaurantQueryHandler creates a handler for restaurant order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersByRestaurantQueryHandler(db *gorm.DB) GetOrdersByRestaurantQueryHandler {
	return GetOrdersByRestaurantQueryHandler{db: db}
}

// Handle executes the query to list a restaurant's orders.
func (h GetOrdersByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRestaurantQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrderSummaries(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			restaurant_id,
			status,
			created_at,
			total
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()))
}

// scanOrderSummaries drains a summary result set shared by both order
// listing queries.
func scanOrderSummaries(tx *gorm.DB) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, clientID, restaurantID uuid.UUID
			status                     int
			createdAt                  time.Time
			total                      string
		)
		if err = rows.Scan(&id, &clientID, &restaurantID, &status, &createdAt, &total); err != nil {
			return nil, err
		}

		summary, buildErr := buildOrderSummary(id, clientID, restaurantID, status, createdAt, total)
		if buildErr != nil {
			return nil, buildErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func buildOrderSummary(
	id, clientID, restaurantID uuid.UUID,
	status int,
	createdAt time.Time,
	total string,
) (OrderSummaryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	client, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	restaurant, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	tot, err := kernel.NewMoneyFromString(total)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:           orderID,
		ClientID:     client,
		RestaurantID: restaurant,
		Status:       order.Status(status),
		CreatedAt:    createdAt,
		Total:        tot,
	}, nil
}
