package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/reviewrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ReviewRepositoryIntegrationTestSuite provides integration tests for
// ReviewRepository, including the unique one-review-per-client-per-restaurant
// constraint.
type ReviewRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reviewrepo.GormReviewRepository
	tracker    *MockAggregateTracker
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError turns unique index violations into gorm.ErrDuplicatedKey,
	// which the repository maps to a conflict.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		TranslateError: true,
	})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&reviewrepo.ReviewDTO{}))
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reviews").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = reviewrepo.NewGormReviewRepository(suite.db, suite.tracker)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testReview := suite.createTestReview(review.Excellent, "great pasta")
	suite.tracker.On("TrackAggregate", testReview.ID(), testReview).Once()

	err := suite.repository.Add(ctx, testReview)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testReview.ID())
	suite.Require().NoError(err)

	suite.Equal(testReview.ID(), retrieved.ID())
	suite.Equal(testReview.ClientID(), retrieved.ClientID())
	suite.Equal(testReview.RestaurantID(), retrieved.RestaurantID())
	suite.Equal(review.Excellent, retrieved.Score())
	suite.Equal("great pasta", retrieved.Comment())
	suite.Empty(retrieved.Response())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_DuplicateClientRestaurantPair_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestReview(review.Good, "")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate, err := review.NewReview(
		kernel.NewUUID(), first.ClientID(), first.RestaurantID(), review.Terrible, "changed my mind",
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestUpdate_PersistsScoreCommentAndResponse() {
	ctx := context.Background()

	testReview := suite.createTestReview(review.Regular, "ok")
	suite.tracker.On("TrackAggregate", testReview.ID(), testReview).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testReview))

	suite.Require().NoError(testReview.Edit(testReview.ClientID(), review.Bad, "cold food"))
	suite.Require().NoError(testReview.Respond("sorry, next one is on us"))

	err := suite.repository.Update(ctx, testReview)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testReview.ID())
	suite.Require().NoError(err)
	suite.Equal(review.Bad, retrieved.Score())
	suite.Equal("cold food", retrieved.Comment())
	suite.Equal("sorry, next one is on us", retrieved.Response())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestDelete_ExistingReview_RemovesRow() {
	ctx := context.Background()

	testReview := suite.createTestReview(review.Good, "")
	suite.tracker.On("TrackAggregate", testReview.ID(), testReview).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testReview))

	err := suite.repository.Delete(ctx, testReview.ID())
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, testReview.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestExists_ReportsClientRestaurantPair() {
	ctx := context.Background()

	testReview := suite.createTestReview(review.Good, "")
	suite.tracker.On("TrackAggregate", testReview.ID(), testReview).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testReview))

	exists, err := suite.repository.Exists(ctx, testReview.ClientID(), testReview.RestaurantID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, kernel.NewUUID(), testReview.RestaurantID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestGetAllByRestaurant_NewestFirst() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	older, err := review.RestoreReview(
		kernel.NewUUID(), kernel.NewUUID(), restaurantID,
		review.Good, "", "",
		time.Now().UTC().Add(-time.Hour), time.Now().UTC().Add(-time.Hour),
	)
	suite.Require().NoError(err)
	newer, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), restaurantID, review.Excellent, "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	reviews, err := suite.repository.GetAllByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)

	suite.Require().Len(reviews, 2)
	suite.Equal(newer.ID(), reviews[0].ID())
	suite.Equal(older.ID(), reviews[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestReview creates a review from a fresh client for a fresh restaurant.
func (suite *ReviewRepositoryIntegrationTestSuite) createTestReview(
	score review.Score, comment string,
) *review.Review {
	testReview, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), score, comment)
	suite.Require().NoError(err)
	return testReview
}

func TestReviewRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryIntegrationTestSuite))
}
