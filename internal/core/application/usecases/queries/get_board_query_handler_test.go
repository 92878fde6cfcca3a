package queries_test

import (
	"context"
	"testing"
	"time"

	"dietboard/internal/adapters/out/postgres/orderrepo"
	"dietboard/internal/core/application/usecases/queries"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubTracker satisfies the repositories' aggregate tracking without
// recording anything; the query tests only need rows in the database.
type stubTracker struct{}

func (stubTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetBoardQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetBoardQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetBoardQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetBoardQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, stubTracker{})
}

func (suite *GetBoardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetBoardQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetBoardQueryHandlerTestSuite) addOrder(meal string, createdAt time.Time) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Mr. Silva", "101-A", "Ward A",
		"Soft + Low-Sodium", meal, "",
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetBoardQueryHandlerTestSuite) columnByStatus(
	resp queries.GetBoardQueryResponse, status order.Status,
) queries.BoardColumnResponse {
	for _, column := range resp.Columns {
		if column.Status == status.String() {
			return column
		}
	}
	suite.FailNowf("column missing", "no column for status %s", status)
	return queries.BoardColumnResponse{}
}

func (suite *GetBoardQueryHandlerTestSuite) TestHandle_EmptyDatabase_AllColumnsPresentAndEmpty() {
	resp, err := suite.handler.Handle(context.Background(), queries.NewGetBoardQuery())

	suite.Require().NoError(err)
	suite.Require().Len(resp.Columns, len(order.AllStatuses()))
	for i, status := range order.AllStatuses() {
		suite.Equal(status.String(), resp.Columns[i].Status)
		suite.Empty(resp.Columns[i].Orders)
	}
}

func (suite *GetBoardQueryHandlerTestSuite) TestHandle_PartitionsByStatusInCreationOrder() {
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)

	first := suite.addOrder("Lunch", base)
	second := suite.addOrder("Dinner", base.Add(time.Minute))

	preparing, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Mrs. Costa", "204-B", "Ward B",
		"Free", "Lunch", "",
		base.Add(2*time.Minute),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(preparing.StartPreparation("Team 1", base.Add(3*time.Minute)))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), preparing))

	resp, err := suite.handler.Handle(context.Background(), queries.NewGetBoardQuery())
	suite.Require().NoError(err)

	newColumn := suite.columnByStatus(resp, order.StatusNew)
	suite.Require().Len(newColumn.Orders, 2)
	suite.Equal(first.ID(), newColumn.Orders[0].ID)
	suite.Equal(second.ID(), newColumn.Orders[1].ID)

	preparingColumn := suite.columnByStatus(resp, order.StatusPreparing)
	suite.Require().Len(preparingColumn.Orders, 1)
	suite.Equal(preparing.ID(), preparingColumn.Orders[0].ID)
	suite.Equal("Team 1", preparingColumn.Orders[0].AssignedTo)
	suite.Require().NotNil(preparingColumn.Orders[0].StartedAt)
}

func (suite *GetBoardQueryHandlerTestSuite) TestHandle_ExcludesTerminalOrders() {
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	suite.addOrder("Lunch", base)

	delivered, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Mrs. Costa", "204-B", "Ward B",
		"Free", "Dinner", "",
		base,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(delivered.StartPreparation("", base.Add(time.Minute)))
	suite.Require().NoError(delivered.MarkReady(base.Add(2*time.Minute)))
	suite.Require().NoError(delivered.ConfirmDelivery("Sandra", base.Add(3*time.Minute)))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), delivered))

	resp, err := suite.handler.Handle(context.Background(), queries.NewGetBoardQuery())
	suite.Require().NoError(err)

	total := 0
	for _, column := range resp.Columns {
		total += len(column.Orders)
	}
	suite.Equal(1, total)
	suite.Empty(suite.columnByStatus(resp, order.StatusDelivered).Orders)
}

func (suite *GetBoardQueryHandlerTestSuite) TestHandle_NotConstructedQuery_Fails() {
	_, err := suite.handler.Handle(context.Background(), queries.GetBoardQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetBoardQueryIsNotConstructed)
}

func TestGetBoardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBoardQueryHandlerTestSuite))
}
