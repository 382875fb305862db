package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderItemRequest is one requested line in an order payload.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	ClientID     string             `json:"clientId"`
	RestaurantID string             `json:"restaurantId"`
	Items        []OrderItemRequest `json:"items"`
	Discount     float64            `json:"discount"`
	Notes        string             `json:"notes"`
}

// UpdateOrderRequest is the payload for PUT /api/v1/orders/{orderId}.
type UpdateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
	Notes string             `json:"notes"`
}

// ChangeOrderStatusRequest is the payload for PATCH /api/v1/orders/{orderId}/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderCreatedResponse returns the identifier of a newly created order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the full order representation returned by GET.
type OrderResponse struct {
	ID           string              `json:"id"`
	ClientID     string              `json:"clientId"`
	RestaurantID string              `json:"restaurantId"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	DeliveryFee  string              `json:"deliveryFee"`
	Discount     string              `json:"discount"`
	Total        string              `json:"total"`
	Notes        string              `json:"notes,omitempty"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one line item in an order representation.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// OrderSummaryResponse is the compact order representation used by list endpoints.
type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	RestaurantID string    `json:"restaurantId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Total        string    `json:"total"`
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return writeError(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}
	items, err := toItemRequests(request.Items)
	if err != nil {
		return writeError(ctx, err)
	}
	discount, err := discountFromRequest(request.Discount)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, restaurantID, items, discount, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - replaces items and notes.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toItemRequests(request.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersByClient handles GET /api/v1/clients/{clientId}/orders.
func (s *Server) GetOrdersByClient(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByClientQuery(clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.handlers.GetOrdersByClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetOrdersByRestaurant handles GET /api/v1/restaurants/{restaurantId}/orders.
func (s *Server) GetOrdersByRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByRestaurantQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.handlers.GetOrdersByRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// discountFromRequest converts the requested discount into Money, treating
// negative amounts as no discount at all.
func discountFromRequest(value float64) (kernel.Money, error) {
	return kernel.NewMoney(decimal.Max(decimal.NewFromFloat(value), decimal.Zero))
}

func toItemRequests(items []OrderItemRequest) ([]commands.ItemRequest, error) {
	requests := make([]commands.ItemRequest, len(items))
	for i, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}
		requests[i] = commands.ItemRequest{ProductID: productID, Quantity: item.Quantity}
	}
	return requests, nil
}

func toOrderResponse(response queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}

	return OrderResponse{
		ID:           response.ID.String(),
		ClientID:     response.ClientID.String(),
		RestaurantID: response.RestaurantID.String(),
		Status:       response.Status.String(),
		CreatedAt:    response.CreatedAt,
		DeliveryFee:  response.DeliveryFee.String(),
		Discount:     response.Discount.String(),
		Total:        response.Total.String(),
		Notes:        response.Notes,
		Items:        items,
	}
}

func toOrderSummaryResponses(summaries []queries.OrderSummaryResponse) []OrderSummaryResponse {
	responses := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = OrderSummaryResponse{
			ID:           summary.ID.String(),
			ClientID:     summary.ClientID.String(),
			RestaurantID: summary.RestaurantID.String(),
			Status:       summary.Status.String(),
			CreatedAt:    summary.CreatedAt,
			Total:        summary.Total.String(),
		}
	}
	return responses
}
