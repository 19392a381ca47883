package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderCategoryDTO{},
		&orderrepo.OrderMediaDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_categories, order_media").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	id := kernel.NewUUID()
	clientID := kernel.NewUUID()
	categories := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	address, err := order.NewAddress("12 Canal St", kernel.NewUUID())
	suite.Require().NoError(err)

	budget := int64(25000)
	original, err := order.NewOrder(
		id, clientID, "repaint the hallway", categories, address, &budget, true,
		time.Now().UTC().Truncate(time.Second))
	suite.Require().NoError(err)

	photo, err := order.NewMediaFile("wall.jpg", "https://cdn.example.com/wall.jpg", "image/jpeg")
	suite.Require().NoError(err)
	suite.Require().NoError(original.AttachMedia([]order.MediaFile{photo}))

	suite.tracker.On("TrackAggregate", id, original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrieved.ID())
	suite.Equal(clientID, retrieved.ClientID())
	suite.Equal("repaint the hallway", retrieved.Description())
	suite.ElementsMatch(categories, retrieved.CategoryIDs())
	suite.Equal("12 Canal St", retrieved.Address().Text())
	suite.Require().NotNil(retrieved.Budget())
	suite.Equal(budget, *retrieved.Budget())
	suite.True(retrieved.Urgent())
	suite.Len(retrieved.Media(), 1)
	suite.Equal("wall.jpg", retrieved.Media()[0].Name())
	suite.Equal(order.Placed, retrieved.Status())
	suite.Nil(retrieved.ApprovedBid())
	suite.False(retrieved.Archived())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ApprovalRoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	bidID := kernel.NewUUID()
	suite.Require().NoError(testOrder.ApproveBid(bidID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrieved.Status())
	suite.Require().NotNil(retrieved.ApprovedBid())
	suite.Equal(bidID, *retrieved.ApprovedBid())

	// Reverting must clear the stored reference, not just the status.
	suite.tracker.On("TrackAggregate", retrieved.ID(), retrieved).Once()
	suite.Require().NoError(retrieved.RevertToPlaced())
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	reverted, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, reverted.Status())
	suite.Nil(reverted.ApprovedBid())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsMediaRows() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	photo, err := order.NewMediaFile("before.jpg", "https://cdn.example.com/before.jpg", "image/jpeg")
	suite.Require().NoError(err)
	clip, err := order.NewMediaFile("leak.mp4", "https://cdn.example.com/leak.mp4", "video/mp4")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AttachMedia([]order.MediaFile{photo, clip}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Media(), 2)
	suite.Equal("before.jpg", retrieved.Media()[0].Name())
	suite.Equal("leak.mp4", retrieved.Media()[1].Name())
	suite.True(retrieved.Media()[1].IsVideo())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetExpired_ReturnsOnlySweepCandidates() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Placed and past its expiration: the sweep must pick it up.
	expired := suite.createTestOrderPlacedAt(now.Add(-2 * order.DefaultLifetime))

	// Placed but still inside its window.
	fresh := suite.createTestOrderPlacedAt(now)

	// Past its window but already archived.
	archived := suite.createTestOrderPlacedAt(now.Add(-2 * order.DefaultLifetime))
	archived.Archive()

	for _, o := range []*order.Order{expired, fresh, archived} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	candidates, err := suite.repository.GetExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal(expired.ID(), candidates[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStoreFailure_SurfacesAsStoreUnavailable() {
	ctx := context.Background()

	connStr, err := suite.container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	deadDB, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	sqlDB, err := deadDB.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	repository := orderrepo.NewGormOrderRepository(deadDB, suite.tracker)

	_, err = repository.Get(ctx, kernel.NewUUID())
	var unavailable *errs.StoreUnavailableError
	suite.Require().ErrorAs(err, &unavailable)

	err = repository.Add(ctx, suite.createTestOrder())
	suite.Require().ErrorAs(err, &unavailable)
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderPlacedAt(time.Now().UTC())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderPlacedAt(placedAt time.Time) *order.Order {
	address, err := order.NewAddress("5 Mill Rd", kernel.NewUUID())
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "fix the fence",
		[]kernel.UUID{kernel.NewUUID()}, address, nil, false, placedAt)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
