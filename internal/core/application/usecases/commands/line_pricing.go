package commands

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ErrItemsAreRequired is returned by order-producing commands given no items.
// It is an invalid-state error, same as checking out an empty cart.
var ErrItemsAreRequired = errs.NewInvalidStateError("no items to order")

// CheckoutItem is a product reference plus quantity submitted directly by a
// caller, as opposed to lines read from a stored cart.
type CheckoutItem struct {
	ProductID kernel.UUID
	Quantity  int
}

func validateCheckoutItems(items []CheckoutItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	return nil
}

func cartCheckoutItems(c *cart.Cart) []CheckoutItem {
	items := make([]CheckoutItem, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, CheckoutItem{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}
	return items
}

func checkoutItemProductIDs(items []CheckoutItem) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// priceLines turns items into order lines, snapshotting the current catalog
// price of each product. Any item whose product is absent from the resolved
// set fails the whole pricing with a not-found error.
func priceLines(items []CheckoutItem, products map[kernel.UUID]product.Product) ([]*order.Line, error) {
	lines := make([]*order.Line, 0, len(items))
	for _, item := range items {
		resolved, ok := products[item.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", item.ProductID.String())
		}

		line, err := order.NewLine(kernel.NewUUID(), item.ProductID, item.Quantity, resolved.Price())
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
