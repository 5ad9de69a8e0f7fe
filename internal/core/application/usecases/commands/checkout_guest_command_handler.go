package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// CheckoutGuestCommandHandler handles anonymous checkouts. There is no cart
// to drain, so the transaction only covers the order insert; pricing still
// snapshots current catalog prices exactly like the identified path.
type CheckoutGuestCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalogReader
	publisher  ports.NotificationPublisher
}

// NewCheckoutGuestCommandHandler creates a handler for guest checkouts.
func NewCheckoutGuestCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalogReader,
	publisher ports.NotificationPublisher,
) CheckoutGuestCommandHandler {
	return CheckoutGuestCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
	}
}

// Handle processes the guest checkout command.
// Returns ObjectNotFoundError if any submitted product id is not in the
// catalog. Publishes the creation notification best-effort after commit.
func (h CheckoutGuestCommandHandler) Handle(ctx context.Context, cmd CheckoutGuestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	products, err := h.catalog.Resolve(ctx, checkoutItemProductIDs(cmd.Items()))
	if err != nil {
		return err
	}

	lines, err := priceLines(cmd.Items(), products)
	if err != nil {
		return err
	}

	placedOrder, err := order.NewGuestOrder(
		cmd.OrderID(),
		cmd.Address(),
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.Payment(),
		lines,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.OrderCreated(ctx, placedOrder, products)

	return nil
}
