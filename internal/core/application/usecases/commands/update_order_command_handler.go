package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdateOrderCommandHandler handles administrative order edits.
// Applies the optional field replacements to the loaded aggregate, letting
// each one enforce its own rules: a status move still runs through the
// transition table, replaced lines are re-priced at current catalog prices.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalogReader
	publisher  ports.NotificationPublisher
}

// NewUpdateOrderCommandHandler creates a handler for administrative edits.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalogReader,
	publisher ports.NotificationPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
	}
}

// Handle processes the administrative edit.
// Returns ObjectNotFoundError if the order or any replacement product does
// not exist, and InvalidTransitionError for a forbidden status move. The
// status notification is published best-effort after commit so subscribers
// re-render the order even when only non-status fields changed.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	editedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Items() != nil {
		products, resolveErr := h.catalog.Resolve(ctx, checkoutItemProductIDs(cmd.Items()))
		if resolveErr != nil {
			return resolveErr
		}

		lines, priceErr := priceLines(cmd.Items(), products)
		if priceErr != nil {
			return priceErr
		}

		if err = editedOrder.ReplaceLines(lines); err != nil {
			return err
		}
	}

	if cmd.CustomerID() != nil {
		if err = editedOrder.AssignCustomer(*cmd.CustomerID()); err != nil {
			return err
		}
	}

	if cmd.AddressID() != nil {
		destination, destErr := order.NewAddressReference(*cmd.AddressID())
		if destErr != nil {
			return destErr
		}
		if err = editedOrder.AssignDestination(destination); err != nil {
			return err
		}
	}

	if cmd.Status() != nil {
		if err = editedOrder.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, editedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.StatusChanged(ctx, editedOrder.ID(), editedOrder.Status())

	return nil
}
