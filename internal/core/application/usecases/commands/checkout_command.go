package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to convert a customer's cart into an
// order delivered to one of their stored addresses.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, customerID, addressID)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, catalog, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", orderID)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	addressID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the customer's cart.
// Validates that all three identifiers are valid.
func NewCheckoutCommand(orderID kernel.UUID, customerID kernel.UUID, addressID kernel.UUID) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order being created.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the checking-out customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the stored delivery address identifier.
func (c CheckoutCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
