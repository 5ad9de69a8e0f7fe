package commands_test

import (
	"context"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUpdateLineCartRepository struct{ mock.Mock }

func (m *MockUpdateLineCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockUpdateLineCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockUpdateLineCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockUpdateLineUoW struct{ mock.Mock }

func (m *MockUpdateLineUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUpdateLineUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUpdateLineUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUpdateLineUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockUpdateLineUoWFactory struct{ mock.Mock }

func (m *MockUpdateLineUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

func TestUpdateCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewUpdateCartItemCommand(customerID, itemID, 7)
	require.NoError(t, err)

	item, err := cart.RestoreItem(itemID, kernel.NewUUID(), 2)
	require.NoError(t, err)
	customerCart, err := cart.RestoreCart(kernel.NewUUID(), customerID, []*cart.Item{item})
	require.NoError(t, err)

	cartRepo := new(MockUpdateLineCartRepository)
	uow := new(MockUpdateLineUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		cartRepo.On("Update", ctx, customerCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 7, customerCart.Items()[0].Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCartItemCommandHandler_Handle_ForeignLineIsNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	// A line id taken from some other customer's cart. The requester's own
	// cart has no such line, so the handler must answer not found without
	// touching anything.
	foreignItemID := kernel.NewUUID()

	cmd, err := commands.NewUpdateCartItemCommand(customerID, foreignItemID, 3)
	require.NoError(t, err)

	ownItem, err := cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)
	customerCart, err := cart.RestoreCart(kernel.NewUUID(), customerID, []*cart.Item{ownItem})
	require.NoError(t, err)

	cartRepo := new(MockUpdateLineCartRepository)
	uow := new(MockUpdateLineUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 1, customerCart.Items()[0].Quantity())
	cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCartItemCommandHandler_Handle_NoCartIsNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewUpdateCartItemCommand(customerID, kernel.NewUUID(), 3)
	require.NoError(t, err)

	cartRepo := new(MockUpdateLineCartRepository)
	uow := new(MockUpdateLineUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUpdateLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewUpdateCartItemCommand_NonPositiveQuantity(t *testing.T) {
	_, err := commands.NewUpdateCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
