package commands

import (
	"context"
	"errors"

	"storefront/internal/pkg/errs"
)

// UpdateCartItemCommandHandler handles cart line quantity changes.
// A line outside the requesting customer's cart is reported as not found,
// which keeps customers from probing each other's carts.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart line updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change command.
// Returns ObjectNotFoundError if the customer has no cart or the line is not
// in their cart.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundError("cartItem", cmd.ItemID().String())
	}
	if err != nil {
		return err
	}

	if err = customerCart.UpdateItemQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
