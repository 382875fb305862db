package productrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/productrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
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

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository, focusing on the optimistic version check that guards
// concurrent stock updates.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Margherita", "12.50", 5)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()

	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	suite.Equal(testProduct.ID(), retrieved.ID())
	suite.Equal(testProduct.RestaurantID(), retrieved.RestaurantID())
	suite.Equal("Margherita", retrieved.Name())
	suite.True(testProduct.Price().IsEqual(retrieved.Price()))
	suite.Equal(5, retrieved.Stock())
	suite.True(retrieved.IsAvailable())
	suite.Equal(0, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Calzone", "14.00", 8)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testProduct))
	suite.Require().NoError(testProduct.Reserve(3))

	err := suite.repository.Update(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(5, retrieved.Stock())
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Lasagna", "16.00", 10)
	suite.tracker.On("TrackAggregate", testProduct.ID(), mock.Anything).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	// Two readers load the same version of the product.
	first, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	// The first writer wins.
	suite.Require().NoError(first.Reserve(4))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second writer holds a stale version and must be rejected.
	suite.Require().NoError(second.Reserve(7))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// Only the first write landed.
	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, retrieved.Stock())
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsVersionConflict() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Ghost dish", "9.00", 1)

	err := suite.repository.Update(ctx, testProduct)
	suite.Require().Error(err)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingProduct_ReturnsProduct() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Risotto", "18.00", 4)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	// Row locking needs a surrounding transaction.
	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepository := productrepo.NewGormProductRepository(tx, suite.tracker)

	retrieved, err := txRepository.GetForUpdate(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrieved.ID())
	suite.Equal(4, retrieved.Stock())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllByRestaurant_OrderedByName() {
	ctx := context.Background()

	restaurantID := kernel.NewUUID()
	zitti := suite.createTestProductFor(restaurantID, "Ziti", "11.00", 3)
	arancini := suite.createTestProductFor(restaurantID, "Arancini", "8.00", 6)
	foreign := suite.createTestProduct("Other", "5.00", 2)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, zitti))
	suite.Require().NoError(suite.repository.Add(ctx, arancini))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	products, err := suite.repository.GetAllByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)

	suite.Require().Len(products, 2)
	suite.Equal("Arancini", products[0].Name())
	suite.Equal("Ziti", products[1].Name())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestProduct creates a product under a fresh restaurant.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(name, price string, stock int) *product.Product {
	return suite.createTestProductFor(kernel.NewUUID(), name, price, stock)
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProductFor(
	restaurantID kernel.UUID, name, price string, stock int,
) *product.Product {
	money, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)

	testProduct, err := product.NewProduct(kernel.NewUUID(), restaurantID, name, "house special", money, stock)
	suite.Require().NoError(err)
	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
