package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout finds nothing to order.
var ErrCartIsEmpty = errs.NewInvalidStateError("cart is empty")

// CheckoutCommandHandler orchestrates the cart-to-order conversion.
// Within a single transaction it reads and locks the cart, snapshots current
// catalog prices into order lines, persists the order, and empties the cart.
// Either the order exists and the cart is empty, or neither happened.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, catalog, publisher)
//	cmd, _ := NewCheckoutCommand(kernel.NewUUID(), customerID, addressID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("Nothing in the cart")
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("A cart item's product no longer exists")
//	case err != nil:
//	    log.Printf("Checkout failed: %v", err)
//	}
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.ProductCatalogReader
	publisher  ports.NotificationPublisher
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a UoWFactory spanning both cart and order repositories.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	catalog ports.ProductCatalogReader,
	publisher ports.NotificationPublisher,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
	}
}

// Handle processes the checkout command.
// Returns ErrCartIsEmpty if the customer has no cart or an empty one, and
// ObjectNotFoundError if any cart line references a product that has since
// left the catalog. After a successful commit the creation notification is
// published best-effort; a publish failure never fails the checkout.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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
	orderRepo := uow.OrderRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCartIsEmpty
	}
	if err != nil {
		return err
	}
	if customerCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	items := cartCheckoutItems(customerCart)

	products, err := h.catalog.Resolve(ctx, checkoutItemProductIDs(items))
	if err != nil {
		return err
	}

	lines, err := priceLines(items, products)
	if err != nil {
		return err
	}

	destination, err := order.NewAddressReference(cmd.AddressID())
	if err != nil {
		return err
	}

	placedOrder, err := order.NewCustomerOrder(cmd.OrderID(), cmd.CustomerID(), destination, lines)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, placedOrder); err != nil {
		return err
	}

	customerCart.Clear()
	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.OrderCreated(ctx, placedOrder, products)

	return nil
}
