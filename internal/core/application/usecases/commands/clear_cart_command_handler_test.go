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

type MockClearCartRepository struct{ mock.Mock }

func (m *MockClearCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClearCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClearCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockClearCartUoW struct{ mock.Mock }

func (m *MockClearCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClearCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClearCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClearCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockClearCartUoWFactory struct{ mock.Mock }

func (m *MockClearCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

func TestClearCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewClearCartCommand(customerID)
	require.NoError(t, err)

	item, err := cart.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)
	customerCart, err := cart.RestoreCart(kernel.NewUUID(), customerID, []*cart.Item{item})
	require.NoError(t, err)

	cartRepo := new(MockClearCartRepository)
	uow := new(MockClearCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		cartRepo.On("Update", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClearCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, customerCart.IsEmpty())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearCartCommandHandler_Handle_NoCartIsANoOp(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewClearCartCommand(customerID)
	require.NoError(t, err)

	cartRepo := new(MockClearCartRepository)
	uow := new(MockClearCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClearCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
