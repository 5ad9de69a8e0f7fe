package commands

import (
	"context"
	"errors"

	"storefront/internal/pkg/errs"
)

// RemoveCartItemCommandHandler handles cart line removal.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns ObjectNotFoundError if the customer has no cart or the line is not
// in their cart.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	if err = customerCart.RemoveItem(cmd.ItemID()); err != nil {
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
