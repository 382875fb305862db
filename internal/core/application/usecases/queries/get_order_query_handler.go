package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order and its items from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items.
// Returns ObjectNotFound when no order has the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			restaurant_id,
			status,
			created_at,
			delivery_fee,
			discount,
			total,
			notes
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id, clientID, restaurantID   uuid.UUID
		status                       int
		createdAt                    time.Time
		deliveryFee, discount, total string
		notes                        string
	)
	if err := row.Scan(
		&id, &clientID, &restaurantID, &status, &createdAt,
		&deliveryFee, &discount, &total, &notes,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"orderID", query.OrderID().String(),
			)
		}
		return GetOrderQueryResponse{}, err
	}

	if err := fillOrderHeader(&resp, id, clientID, restaurantID, status, createdAt,
		deliveryFee, discount, total, notes); err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			quantity  int
			unitPrice string
		)
		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		item, itemErr := buildItemResponse(productID, quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func fillOrderHeader(
	resp *GetOrderQueryResponse,
	id, clientID, restaurantID uuid.UUID,
	status int,
	createdAt time.Time,
	deliveryFee, discount, total, notes string,
) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}
	client, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return err
	}
	restaurant, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return err
	}

	fee, err := kernel.NewMoneyFromString(deliveryFee)
	if err != nil {
		return err
	}
	disc, err := kernel.NewMoneyFromString(discount)
	if err != nil {
		return err
	}
	tot, err := kernel.NewMoneyFromString(total)
	if err != nil {
		return err
	}

	resp.ID = orderID
	resp.ClientID = client
	resp.RestaurantID = restaurant
	resp.Status = order.Status(status)
	resp.CreatedAt = createdAt
	resp.DeliveryFee = fee
	resp.Discount = disc
	resp.Total = tot
	resp.Notes = notes
	return nil
}

func buildItemResponse(productID uuid.UUID, quantity int, unitPrice string) (OrderItemResponse, error) {
	product, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}

	price, err := kernel.NewMoneyFromString(unitPrice)
	if err != nil {
		return OrderItemResponse{}, err
	}

	return OrderItemResponse{
		ProductID: product,
		Quantity:  quantity,
		UnitPrice: price,
		Subtotal:  price.MulInt(quantity),
	}, nil
}
