package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/domain/services"
)

func TestReconcileRatingsCommandHandler_Handle_RewritesEveryRating(t *testing.T) {
	ctx := t.Context()

	rated := testRestaurant(t)
	stale := 2.0
	rated.SetRating(&stale)
	reviews := []*review.Review{
		testReview(t, kernel.NewUUID(), rated.ID(), review.Excellent),
		testReview(t, kernel.NewUUID(), rated.ID(), review.Good),
	}

	unrated := testRestaurant(t)
	orphan := 3.0
	unrated.SetRating(&orphan)

	cmd := commands.NewReconcileRatingsCommand()

	reviewRepo := new(MockReviewRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetAll", mock.Anything).
			Return([]*account.Restaurant{rated, unrated}, nil).Once(),

		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetForUpdate", mock.Anything, rated.ID()).Return(rated, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetAllByRestaurant", mock.Anything, rated.ID()).Return(reviews, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Update", mock.Anything, rated).Return(nil).Once(),

		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetForUpdate", mock.Anything, unrated.ID()).Return(unrated, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetAllByRestaurant", mock.Anything, unrated.ID()).
			Return([]*review.Review{}, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Update", mock.Anything, unrated).Return(nil).Once(),

		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileRatingsCommandHandler(factory, services.NewRatingAggregator())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, rated.Rating())
	assert.InDelta(t, 4.5, *rated.Rating(), 0.0001)
	assert.Nil(t, unrated.Rating())
	reviewRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileRatingsCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	h := commands.NewReconcileRatingsCommandHandler(new(MockReviewUoWFactory), services.NewRatingAggregator())

	err := h.Handle(t.Context(), commands.ReconcileRatingsCommand{})

	assert.ErrorIs(t, err, commands.ErrReconcileRatingsCommandIsNotConstructed)
}
