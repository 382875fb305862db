package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
)

// CreateReviewRequest is the payload for POST /api/v1/reviews.
type CreateReviewRequest struct {
	ClientID     string `json:"clientId"`
	RestaurantID string `json:"restaurantId"`
	Score        int    `json:"score"`
	Comment      string `json:"comment"`
}

// EditReviewRequest is the payload for PUT /api/v1/reviews/{reviewId}.
type EditReviewRequest struct {
	ClientID string `json:"clientId"`
	Score    int    `json:"score"`
	Comment  string `json:"comment"`
}

// RespondReviewRequest is the payload for POST /api/v1/reviews/{reviewId}/response.
type RespondReviewRequest struct {
	Response string `json:"response"`
}

// ReviewCreatedResponse returns the identifier of a newly created review.
type ReviewCreatedResponse struct {
	ID string `json:"id"`
}

// ReviewResponse is one review as returned by the restaurant reviews listing.
type ReviewResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RestaurantRatingResponse is the aggregate rating of a restaurant.
// Rating is null until the restaurant has at least one review.
type RestaurantRatingResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

// CreateReview handles POST /api/v1/reviews - creates a new review.
func (s *Server) CreateReview(ctx echo.Context) error {
	var request CreateReviewRequest
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
	score, err := review.ScoreFromInt(request.Score)
	if err != nil {
		return writeError(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(reviewID, clientID, restaurantID, score, request.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReviewCreatedResponse{ID: reviewID.String()})
}

// EditReview handles PUT /api/v1/reviews/{reviewId} - edits an own review.
func (s *Server) EditReview(ctx echo.Context) error {
	reviewID, err := kernel.UUIDFromString(ctx.Param("reviewId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request EditReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return writeError(ctx, err)
	}
	score, err := review.ScoreFromInt(request.Score)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEditReviewCommand(reviewID, clientID, score, request.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.EditReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RespondReview handles POST /api/v1/reviews/{reviewId}/response - attaches
// the restaurant's reply to a review.
func (s *Server) RespondReview(ctx echo.Context) error {
	reviewID, err := kernel.UUIDFromString(ctx.Param("reviewId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request RespondReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRespondReviewCommand(reviewID, request.Response)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.RespondReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteReview handles DELETE /api/v1/reviews/{reviewId}.
func (s *Server) DeleteReview(ctx echo.Context) error {
	reviewID, err := kernel.UUIDFromString(ctx.Param("reviewId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteReviewCommand(reviewID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRestaurantRating handles GET /api/v1/restaurants/{restaurantId}/rating.
func (s *Server) GetRestaurantRating(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantRatingQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.handlers.GetRestaurantRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantRatingResponse{
		ID:          response.ID.String(),
		Name:        response.Name,
		Rating:      response.Rating,
		ReviewCount: response.ReviewCount,
	})
}

// GetReviewsByRestaurant handles GET /api/v1/restaurants/{restaurantId}/reviews.
func (s *Server) GetReviewsByRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetReviewsByRestaurantQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	reviews, err := s.handlers.GetReviewsByRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	responses := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		responses[i] = ReviewResponse{
			ID:        r.ID.String(),
			ClientID:  r.ClientID.String(),
			Score:     r.Score.Value(),
			Comment:   r.Comment,
			Response:  r.Response,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, responses)
}
