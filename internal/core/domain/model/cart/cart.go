package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory functions.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the mutable staging area each customer accumulates items in
// before checkout. It is the aggregate root owning its Items.
//
// Cart follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - At most one Item per product id; adding an already-present product
//     merges quantities instead of creating a second line
//   - Every Item quantity is a positive integer
//   - Can only be created through NewCart or RestoreCart
//
// A customer's cart is created lazily on first use and emptied, not
// deleted, after a successful checkout.
type Cart struct {
	id         kernel.UUID
	customerID kernel.UUID
	items      []*Item

	isConstructed bool
}

// NewCart creates an empty cart owned by the given customer.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	c := &Cart{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart with its items from persistence.
// Rejects item sets that violate the one-line-per-product invariant.
func RestoreCart(id kernel.UUID, customerID kernel.UUID, items []*Item) (*Cart, error) {
	c, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[item.productID]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate line for product %s", item.productID))
		}
		seen[item.productID] = struct{}{}
	}

	c.items = items
	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []*Item {
	return c.items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem puts a product into the cart. If a line for the product already
// exists its quantity is incremented by the given amount; otherwise a new
// line with the provided id is appended. The quantity must be positive.
func (c *Cart) AddItem(itemID kernel.UUID, productID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if existing := c.itemForProduct(productID); existing != nil {
		existing.quantity += quantity
		return nil
	}

	item, err := NewItem(itemID, productID, quantity)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// UpdateItemQuantity replaces the quantity of the line with the given id.
// Returns a not-found error if the line does not belong to this cart,
// and an invalid-value error if the quantity is not positive.
func (c *Cart) UpdateItemQuantity(itemID kernel.UUID, quantity int) error {
	item := c.itemByID(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("cartItem", itemID.String())
	}

	return item.setQuantity(quantity)
}

// RemoveItem deletes the line with the given id from the cart.
// Returns a not-found error if the line does not belong to this cart.
func (c *Cart) RemoveItem(itemID kernel.UUID) error {
	for idx, item := range c.items {
		if item.id.IsEqual(itemID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cartItem", itemID.String())
}

// Clear removes all lines. Clearing an already-empty cart is a no-op.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *Cart) itemForProduct(productID kernel.UUID) *Item {
	for _, item := range c.items {
		if item.productID.IsEqual(productID) {
			return item
		}
	}
	return nil
}

func (c *Cart) itemByID(itemID kernel.UUID) *Item {
	for _, item := range c.items {
		if item.id.IsEqual(itemID) {
			return item
		}
	}
	return nil
}
