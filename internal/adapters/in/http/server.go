// Package http exposes the application use cases over a REST API.
// Handlers translate requests into commands and queries, and domain
// errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateReview      commands.CreateReviewCommandHandler
	EditReview        commands.EditReviewCommandHandler
	RespondReview     commands.RespondReviewCommandHandler
	DeleteReview      commands.DeleteReviewCommandHandler

	GetOrder               queries.GetOrderQueryHandler
	GetOrdersByClient      queries.GetOrdersByClientQueryHandler
	GetOrdersByRestaurant  queries.GetOrdersByRestaurantQueryHandler
	GetRestaurantRating    queries.GetRestaurantRatingQueryHandler
	GetReviewsByRestaurant queries.GetReviewsByRestaurantQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	api.GET("/clients/:clientId/orders", s.GetOrdersByClient)
	api.GET("/restaurants/:restaurantId/orders", s.GetOrdersByRestaurant)
	api.GET("/restaurants/:restaurantId/rating", s.GetRestaurantRating)
	api.GET("/restaurants/:restaurantId/reviews", s.GetReviewsByRestaurant)

	api.POST("/reviews", s.CreateReview)
	api.PUT("/reviews/:reviewId", s.EditReview)
	api.POST("/reviews/:reviewId/response", s.RespondReview)
	api.DELETE("/reviews/:reviewId", s.DeleteReview)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error to an HTTP status code and writes the
// JSON error body.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), ErrorResponse{
		Code:    statusCodeFor(err),
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrBusinessRuleViolated):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
