package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for cart additions.
// Verifies the product exists in the catalog, then merges the quantity into
// the customer's cart, creating the cart if this is their first item.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.ProductCatalogReader
}

// NewAddCartItemCommandHandler creates a handler for cart addition operations.
func NewAddCartItemCommandHandler(
	uowFactory CartUoWFactory,
	catalog ports.ProductCatalogReader,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the cart addition command.
// Returns ObjectNotFoundError if the product does not exist in the catalog.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	products, err := h.catalog.Resolve(ctx, []kernel.UUID{cmd.ProductID()})
	if err != nil {
		return err
	}
	if _, ok := products[cmd.ProductID()]; !ok {
		return errs.NewObjectNotFoundError("product", cmd.ProductID().String())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if customerCart, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID()); err != nil {
			return err
		}
		if err = customerCart.AddItem(kernel.NewUUID(), cmd.ProductID(), cmd.Quantity()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, customerCart); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = customerCart.AddItem(kernel.NewUUID(), cmd.ProductID(), cmd.Quantity()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, customerCart); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
