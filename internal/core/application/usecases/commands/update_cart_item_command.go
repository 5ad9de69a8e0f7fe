package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a request to change the quantity of a
// cart line. The line is addressed by its own id and must belong to the
// requesting customer's cart; a foreign line looks like a missing one.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to change a cart line quantity.
// Validates that both ids are valid and the quantity is positive.
func NewUpdateCartItemCommand(customerID kernel.UUID, itemID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the identifier of the cart line being changed.
func (c UpdateCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the replacement quantity.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
