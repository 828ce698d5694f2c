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

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewListOrdersQueryHandler(db, services.NewAccessPolicy(false))
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_history").Error)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) seedOrder(
	customerID kernel.UUID,
	customerEmail string,
	sequence int64,
	placedAt time.Time,
) *order.Order {
	code, err := kernel.NewOrderCode(sequence)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), "Sofa Berlim", "Linho Rustico", "A", 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), code, customerID, customerEmail, []order.Item{item}, placedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))

	return aggregate
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StaffSeesAllNewestFirst() {
	operator, err := user.NewUser(kernel.NewUUID(), "op@example.com", user.Operator)
	suite.Require().NoError(err)

	base := time.Now().UTC().Add(-time.Hour)
	suite.seedOrder(kernel.NewUUID(), "ana@example.com", 1, base)
	suite.seedOrder(kernel.NewUUID(), "bruno@example.com", 2, base.Add(time.Minute))
	suite.seedOrder(kernel.NewUUID(), "clara@example.com", 3, base.Add(2*time.Minute))

	query, err := queries.NewListOrdersQuery(operator, "", 10, 0)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), page.Total)
	suite.Require().Len(page.Orders, 3)
	suite.Equal("ORD-3", page.Orders[0].Code)
	suite.Equal("ORD-2", page.Orders[1].Code)
	suite.Equal("ORD-1", page.Orders[2].Code)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_FilterMatchesCodeAndEmail() {
	operator, err := user.NewUser(kernel.NewUUID(), "op@example.com", user.Operator)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.seedOrder(kernel.NewUUID(), "ana@example.com", 41, now)
	suite.seedOrder(kernel.NewUUID(), "bruno@example.com", 52, now)

	// Case-insensitive match on the customer email.
	query, err := queries.NewListOrdersQuery(operator, "ANA@", 10, 0)
	suite.Require().NoError(err)
	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Orders, 1)
	suite.Equal("ORD-41", page.Orders[0].Code)

	// Substring match on the order code.
	query, err = queries.NewListOrdersQuery(operator, "ord-5", 10, 0)
	suite.Require().NoError(err)
	page, err = suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Orders, 1)
	suite.Equal("bruno@example.com", page.Orders[0].CustomerEmail)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_PaginationBounds() {
	operator, err := user.NewUser(kernel.NewUUID(), "op@example.com", user.Operator)
	suite.Require().NoError(err)

	base := time.Now().UTC().Add(-time.Hour)
	for i := int64(1); i <= 5; i++ {
		suite.seedOrder(kernel.NewUUID(), "ana@example.com", i, base.Add(time.Duration(i)*time.Minute))
	}

	query, err := queries.NewListOrdersQuery(operator, "", 2, 2)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(5), page.Total)
	suite.Require().Len(page.Orders, 2)
	suite.Equal("ORD-3", page.Orders[0].Code)
	suite.Equal("ORD-2", page.Orders[1].Code)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_CustomerSeesOnlyOwnOrders() {
	customerID := kernel.NewUUID()
	customer, err := user.NewUser(customerID, "ana@example.com", user.Customer)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.seedOrder(customerID, "ana@example.com", 61, now)
	suite.seedOrder(kernel.NewUUID(), "bruno@example.com", 62, now)

	query, err := queries.NewListOrdersQuery(customer, "", 10, 0)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Orders, 1)
	suite.Equal("ORD-61", page.Orders[0].Code)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
