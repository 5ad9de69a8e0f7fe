package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a single cart line: a product reference with the desired quantity.
// Items are owned exclusively by their Cart and are only mutated through it.
//
// Invariant: quantity is always a positive integer. There is deliberately no
// upper bound on quantity; no inventory check exists in this system.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewItem creates a new cart line for the given product and quantity.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a cart line from persistence.
// Applies the same validation rules as NewItem.
func RestoreItem(id kernel.UUID, productID kernel.UUID, quantity int) (*Item, error) {
	return NewItem(id, productID, quantity)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the desired quantity for the referenced product.
func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
