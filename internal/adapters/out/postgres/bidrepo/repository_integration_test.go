package bidrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/bidrepo"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
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

// BidRepositoryIntegrationTestSuite verifies bid persistence behavior against
// a real PostgreSQL container, including the bigint[] revision history.
type BidRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bidrepo.GormBidRepository
	tracker    *MockAggregateTracker
}

func (suite *BidRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&bidrepo.BidDTO{}))
}

func (suite *BidRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bids").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bidrepo.NewGormBidRepository(suite.db, suite.tracker)
}

func (suite *BidRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BidRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsRevisionHistory() {
	ctx := context.Background()

	testBid := suite.createTestBid(kernel.NewUUID(), kernel.NewUUID(), 30000)
	suite.Require().NoError(testBid.ReviseAmount(27000))
	suite.Require().NoError(testBid.ReviseAmount(25000))

	suite.tracker.On("TrackAggregate", testBid.ID(), testBid).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testBid))

	retrieved, err := suite.repository.Get(ctx, testBid.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(25000), retrieved.Amount())
	suite.Equal([]int64{30000, 27000}, retrieved.PrevAmounts())
	suite.Equal(bid.Placed, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGet_NonExistentBid_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndHistory() {
	ctx := context.Background()

	testBid := suite.createTestBid(kernel.NewUUID(), kernel.NewUUID(), 18000)
	suite.tracker.On("TrackAggregate", testBid.ID(), testBid).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testBid))

	suite.Require().NoError(testBid.ReviseAmount(16500))
	suite.Require().NoError(testBid.Approve())
	suite.Require().NoError(suite.repository.Update(ctx, testBid))

	retrieved, err := suite.repository.Get(ctx, testBid.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(16500), retrieved.Amount())
	suite.Equal([]int64{18000}, retrieved.PrevAmounts())
	suite.Equal(bid.Approved, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGetForOrderAndProvider_SkipsRemovedBids() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	providerID := kernel.NewUUID()

	removed := suite.createTestBid(orderID, providerID, 9000)
	suite.Require().NoError(removed.Remove())
	suite.tracker.On("TrackAggregate", removed.ID(), removed).Once()
	suite.Require().NoError(suite.repository.Add(ctx, removed))

	found, err := suite.repository.GetForOrderAndProvider(ctx, orderID, providerID)
	suite.Require().NoError(err)
	suite.Nil(found)

	current := suite.createTestBid(orderID, providerID, 8500)
	suite.tracker.On("TrackAggregate", current.ID(), current).Once()
	suite.Require().NoError(suite.repository.Add(ctx, current))

	found, err = suite.repository.GetForOrderAndProvider(ctx, orderID, providerID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(current.ID(), found.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGetAllActiveForOrder_FiltersTerminalAndArchived() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	active := suite.createTestBid(orderID, kernel.NewUUID(), 12000)

	terminated := suite.createTestBid(orderID, kernel.NewUUID(), 11000)
	suite.Require().NoError(terminated.TerminateByClient())

	archived := suite.createTestBid(orderID, kernel.NewUUID(), 10000)
	archived.Archive()

	other := suite.createTestBid(kernel.NewUUID(), kernel.NewUUID(), 9500)

	for _, b := range []*bid.Bid{active, terminated, archived, other} {
		suite.tracker.On("TrackAggregate", b.ID(), b).Once()
		suite.Require().NoError(suite.repository.Add(ctx, b))
	}

	bids, err := suite.repository.GetAllActiveForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(bids, 1)
	suite.Equal(active.ID(), bids[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestBid creates a freshly placed bid with default limits.
func (suite *BidRepositoryIntegrationTestSuite) createTestBid(
	orderID, providerID kernel.UUID, amount int64,
) *bid.Bid {
	testBid, err := bid.NewBid(
		kernel.NewUUID(), orderID, providerID, amount, "can start tomorrow",
		bid.DefaultLimits(), time.Now().UTC())
	suite.Require().NoError(err)
	return testBid
}

func TestBidRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BidRepositoryIntegrationTestSuite))
}
