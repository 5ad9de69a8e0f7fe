package commands_test

import (
	"context"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGuestOrderRepository struct{ mock.Mock }

func (m *MockGuestOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockGuestOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockGuestOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockGuestOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockGuestOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockGuestOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGuestCatalog struct{ mock.Mock }

func (m *MockGuestCatalog) Resolve(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]product.Product), args.Error(1)
}

type MockGuestPublisher struct{ mock.Mock }

func (m *MockGuestPublisher) OrderCreated(
	ctx context.Context,
	o *order.Order,
	products map[kernel.UUID]product.Product,
) error {
	args := m.Called(ctx, o, products)
	return args.Error(0)
}

func (m *MockGuestPublisher) StatusChanged(ctx context.Context, orderID kernel.UUID, newStatus order.Status) error {
	args := m.Called(ctx, orderID, newStatus)
	return args.Error(0)
}

type MockGuestUoW struct{ mock.Mock }

func (m *MockGuestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGuestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGuestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGuestUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockGuestUoWFactory struct{ mock.Mock }

func (m *MockGuestUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func makeGuestCheckoutCommand(t *testing.T, productID kernel.UUID) commands.CheckoutGuestCommand {
	t.Helper()

	address, err := order.NewAddressSnapshot("Rua das Flores", "120", "Centro", "")
	require.NoError(t, err)

	payment, err := order.NewPayment(order.Pix, nil)
	require.NoError(t, err)

	cmd, err := commands.NewCheckoutGuestCommand(
		kernel.NewUUID(),
		address,
		"Ana Souza",
		"+5511999990000",
		payment,
		[]commands.CheckoutItem{{ProductID: productID, Quantity: 2}},
	)
	require.NoError(t, err)

	return cmd
}

func TestCheckoutGuestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("35.00")
	require.NoError(t, err)
	resolved, err := product.NewProduct(productID, "Lasagna", price, "")
	require.NoError(t, err)
	products := map[kernel.UUID]product.Product{productID: resolved}

	cmd := makeGuestCheckoutCommand(t, productID)

	catalog := new(MockGuestCatalog)
	orderRepo := new(MockGuestOrderRepository)
	uow := new(MockGuestUoW)
	publisher := new(MockGuestPublisher)

	mock.InOrder(
		catalog.On("Resolve", ctx, []kernel.UUID{productID}).Return(products, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("OrderCreated", ctx, mock.AnythingOfType("*order.Order"), products).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGuestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutGuestCommandHandler(factory, catalog, publisher)
	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	placedOrder := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, cmd.OrderID(), placedOrder.ID())
	assert.Nil(t, placedOrder.CustomerID())
	assert.Equal(t, "Ana Souza", placedOrder.CustomerName())
	assert.Equal(t, order.Pending, placedOrder.Status())
	assert.Equal(t, "70.00", placedOrder.Total().String())
	require.NotNil(t, placedOrder.Payment())
	assert.Equal(t, order.Pix, placedOrder.Payment().Method())

	catalog.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutGuestCommandHandler_Handle_ProductGone(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	cmd := makeGuestCheckoutCommand(t, productID)

	catalog := new(MockGuestCatalog)
	catalog.On("Resolve", ctx, []kernel.UUID{productID}).
		Return(map[kernel.UUID]product.Product{}, nil).Once()

	factory := new(MockGuestUoWFactory)

	handler := commands.NewCheckoutGuestCommandHandler(factory, catalog, new(MockGuestPublisher))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutGuestCommandHandler_Handle_PublishFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("35.00")
	require.NoError(t, err)
	resolved, err := product.NewProduct(productID, "Lasagna", price, "")
	require.NoError(t, err)
	products := map[kernel.UUID]product.Product{productID: resolved}

	cmd := makeGuestCheckoutCommand(t, productID)

	catalog := new(MockGuestCatalog)
	catalog.On("Resolve", ctx, []kernel.UUID{productID}).Return(products, nil).Once()

	orderRepo := new(MockGuestOrderRepository)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockGuestUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockGuestPublisher)
	publisher.On("OrderCreated", ctx, mock.AnythingOfType("*order.Order"), products).
		Return(assert.AnError).Once()

	factory := new(MockGuestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutGuestCommandHandler(factory, catalog, publisher)
	err = handler.Handle(ctx, cmd)

	// The committed order stands even when the notification fails
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestNewCheckoutGuestCommand_NoItems(t *testing.T) {
	address, err := order.NewAddressSnapshot("Rua das Flores", "120", "Centro", "")
	require.NoError(t, err)

	payment, err := order.NewPayment(order.Card, nil)
	require.NoError(t, err)

	_, err = commands.NewCheckoutGuestCommand(
		kernel.NewUUID(), address, "Ana Souza", "+5511999990000", payment, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	// An empty submission is an invalid order state, like an empty cart,
	// so the HTTP layer reports a conflict rather than a bad request.
	require.ErrorIs(t, err, errs.ErrInvalidState)
}
