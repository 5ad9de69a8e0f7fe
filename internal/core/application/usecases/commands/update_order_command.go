package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents an administrative edit of an existing order.
// Every field except the order id is optional; a nil field means "leave it
// as it is". Replacing the items re-prices them at current catalog prices
// and recomputes the total.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID *kernel.UUID
	addressID  *kernel.UUID
	status     *order.Status
	items      []CheckoutItem

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an administrative order edit.
// Optional fields are validated only when present; a non-nil items slice
// must contain at least one valid item.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	addressID *kernel.UUID,
	status *order.Status,
	items []CheckoutItem,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
		cmd.setStatus(status),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the replacement owner, nil when ownership is unchanged.
func (c UpdateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// AddressID returns the replacement stored address, nil when unchanged.
func (c UpdateOrderCommand) AddressID() *kernel.UUID {
	return c.addressID
}

// Status returns the requested lifecycle status, nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Items returns the replacement items, nil when the lines are unchanged.
func (c UpdateOrderCommand) Items() []CheckoutItem {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setAddressID(addressID *kernel.UUID) error {
	if addressID != nil {
		if err := addressID.Validate(); err != nil {
			return err
		}
	}

	c.addressID = addressID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setItems(items []CheckoutItem) error {
	if items != nil {
		if err := validateCheckoutItems(items); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
