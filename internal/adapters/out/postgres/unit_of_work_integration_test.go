package postgres_test

import (
	"context"
	"testing"

	postgresadapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE carts, cart_items, orders, order_lines").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CartRepository(), "First instance should provide cart repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.CartRepository(), "Second instance should provide cart repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_CommitWithoutBegin verifies commit fails without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Commit without begin should fail")
}

// TestUnitOfWork_CommitPersistsAcrossAggregates verifies the checkout write
// pattern: the order insert and the cart drain land together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossAggregates() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	testCart := suite.seedCart(customerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedCart, err := uow.CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	testOrder := suite.buildOrder(customerID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	lockedCart.Clear()
	suite.Require().NoError(uow.CartRepository().Update(ctx, lockedCart))

	suite.Require().NoError(uow.Commit(ctx))

	// Both writes are visible after commit
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&cartrepo.CartItemDTO{}, 0)

	persistedCart, err := postgresadapter.NewGormUnitOfWorkFactory(suite.db).
		Create().CartRepository().GetByCustomer(ctx, testCart.CustomerID())
	suite.Require().NoError(err)
	suite.True(persistedCart.IsEmpty())
}

// TestUnitOfWork_RollbackDiscardsAcrossAggregates verifies a rollback leaves
// neither the order nor the cart mutation behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAcrossAggregates() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	suite.seedCart(customerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedCart, err := uow.CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	testOrder := suite.buildOrder(customerID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	lockedCart.Clear()
	suite.Require().NoError(uow.CartRepository().Update(ctx, lockedCart))

	suite.Require().NoError(uow.Rollback(ctx))

	// Neither write survived
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&cartrepo.CartItemDTO{}, 1)
}

// seedCart persists a one-item cart for the customer outside any transaction.
func (suite *UnitOfWorkIntegrationTestSuite) seedCart(customerID kernel.UUID) *cart.Cart {
	testCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	suite.Require().NoError(testCart.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.CartRepository().Add(context.Background(), testCart))

	return testCart
}

// buildOrder creates a pending customer order with a single line.
func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(customerID kernel.UUID) *order.Order {
	destination, err := order.NewAddressReference(kernel.NewUUID())
	suite.Require().NoError(err)

	price, err := kernel.MoneyFromString("25.00")
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)

	testOrder, err := order.NewCustomerOrder(kernel.NewUUID(), customerID, destination, []*order.Line{line})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
