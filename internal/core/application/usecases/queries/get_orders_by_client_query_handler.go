package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByClientQueryHandler retrieves a client's order history from the
// database, newest first.
type GetOrdersByClientQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByClientQueryHandler creates a handler for client order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersByClientQueryHandler(db *gorm.DB) GetOrdersByClientQueryHandler {
	return GetOrdersByClientQueryHandler{db: db}
}

// Handle executes the query to list a client's orders.
func (h GetOrdersByClientQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByClientQuery,
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
		WHERE client_id = ?
		ORDER BY created_at DESC
	`, query.ClientID().Bytes()))
}
