package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty a customer's cart.
// Clearing is idempotent: an empty or nonexistent cart clears successfully.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the customer's cart.
func NewClearCartCommand(customerID kernel.UUID) (ClearCartCommand, error) {
	cmd := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return ClearCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c ClearCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ClearCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
