package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersByClientQueryIsNotConstructed = errors.New(
	"GetOrdersByClientQuery must be created via NewGetOrdersByClientQuery constructor",
)

// GetOrdersByClientQuery retrieves every order a client has placed,
// newest first.
type GetOrdersByClientQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByClientQuery creates a query for one client's order history.
func NewGetOrdersByClientQuery(clientID kernel.UUID) (GetOrdersByClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetOrdersByClientQuery{}, err
	}

	return GetOrdersByClientQuery{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByClientQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByClientQueryIsNotConstructed)
}

// ClientID returns the client whose orders are listed.
func (q GetOrdersByClientQuery) ClientID() kernel.UUID {
	return q.clientID
}

// OrderSummaryResponse is one row in an order listing: the header without
// line items. Both list queries share this read model.
type OrderSummaryResponse struct {
	ID           kernel.UUID
	ClientID     kernel.UUID
	RestaurantID kernel.UUID
	Status       order.Status
	CreatedAt    time.Time
	Total        kernel.Money
}
