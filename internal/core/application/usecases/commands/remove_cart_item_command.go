package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to delete one line from a
// customer's cart. Ownership rules match UpdateCartItemCommand.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(customerID kernel.UUID, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the identifier of the cart line being removed.
func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveCartItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
