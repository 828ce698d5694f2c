package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency in query tests,
// where aggregate tracking is irrelevant.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.handler = queries.NewGetOrderQueryHandler(db, services.NewAccessPolicy(false))
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_history").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder(customerID kernel.UUID, sequence int64) *order.Order {
	code, err := kernel.NewOrderCode(sequence)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), "Sofa Berlim", "Linho Rustico", "A", 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), code, customerID, "ana@example.com",
		[]order.Item{item}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_StaffSeesAnyOrder() {
	operator, err := user.NewUser(kernel.NewUUID(), "op@example.com", user.Operator)
	suite.Require().NoError(err)

	aggregate := suite.seedOrder(kernel.NewUUID(), 10)

	query, err := queries.NewGetOrderQuery(aggregate.ID(), operator)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), response.ID)
	suite.Equal("ORD-10", response.Code)
	suite.Equal("PLACED", response.Status)
	suite.Equal("ana@example.com", response.CustomerEmail)
	suite.Require().Len(response.Items, 1)
	suite.Equal("Sofa Berlim", response.Items[0].ProductName)
	suite.Require().Len(response.History, 1)
	suite.Equal("PLACED", response.History[0].Status)
	suite.Require().NotNil(response.History[0].ActorID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_CustomerSeesOwnOrder() {
	customerID := kernel.NewUUID()
	customer, err := user.NewUser(customerID, "ana@example.com", user.Customer)
	suite.Require().NoError(err)

	aggregate := suite.seedOrder(customerID, 11)

	query, err := queries.NewGetOrderQuery(aggregate.ID(), customer)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), response.ID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_CustomerProbingForeignOrder_ReadsAsMissing() {
	customer, err := user.NewUser(kernel.NewUUID(), "bob@example.com", user.Customer)
	suite.Require().NoError(err)

	foreign := suite.seedOrder(kernel.NewUUID(), 12)

	query, err := queries.NewGetOrderQuery(foreign.ID(), customer)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	operator, err := user.NewUser(kernel.NewUUID(), "op@example.com", user.Operator)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), operator)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
