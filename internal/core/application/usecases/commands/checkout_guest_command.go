package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutGuestCommandIsNotConstructed = errors.New(
	"CheckoutGuestCommand must be created via NewCheckoutGuestCommand constructor",
)

// CheckoutGuestCommand represents an anonymous checkout: the caller has no
// account and no stored cart, so the items, delivery address, contact
// details, and payment intent all arrive in the command itself.
type CheckoutGuestCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	address      order.AddressSnapshot
	customerName string
	phone        string
	payment      order.Payment
	items        []CheckoutItem

	guard guard.ConstructorGuard
}

// NewCheckoutGuestCommand creates a command for an anonymous checkout.
// The address and payment value objects carry their own validation; the
// command additionally requires a contact name, phone, and at least one item
// with a valid product id and positive quantity.
func NewCheckoutGuestCommand(
	orderID kernel.UUID,
	address order.AddressSnapshot,
	customerName string,
	phone string,
	payment order.Payment,
	items []CheckoutItem,
) (CheckoutGuestCommand, error) {
	cmd := CheckoutGuestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAddress(address),
		cmd.setCustomerName(customerName),
		cmd.setPhone(phone),
		cmd.setPayment(payment),
		cmd.setItems(items),
	); err != nil {
		return CheckoutGuestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutGuestCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutGuestCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order being created.
func (c CheckoutGuestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the inline delivery address.
func (c CheckoutGuestCommand) Address() order.AddressSnapshot {
	return c.address
}

// CustomerName returns the guest's contact name.
func (c CheckoutGuestCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the guest's contact phone.
func (c CheckoutGuestCommand) Phone() string {
	return c.phone
}

// Payment returns the declared payment details.
func (c CheckoutGuestCommand) Payment() order.Payment {
	return c.payment
}

// Items returns the submitted items.
func (c CheckoutGuestCommand) Items() []CheckoutItem {
	return c.items
}

func (c *CheckoutGuestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutGuestCommand) setAddress(address order.AddressSnapshot) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CheckoutGuestCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CheckoutGuestCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CheckoutGuestCommand) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}

func (c *CheckoutGuestCommand) setItems(items []CheckoutItem) error {
	if err := validateCheckoutItems(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
