package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// one of the factory functions. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New(
	"Order must be created via NewCustomerOrder, NewGuestOrder, or RestoreOrder constructor")

// Order is the immutable record produced by checkout and the aggregate root
// owning its Lines. After creation, only the status changes through the
// lifecycle state machine; everything else is frozen except through the
// administrative update path.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and destination
//   - Has at least one line; every line quantity is positive
//   - The total always equals the sum of unit-price-snapshot times quantity
//     over all lines, rounded to two decimal places, computed when the
//     lines are set and never recomputed from live catalog prices
//   - Status transitions follow the lifecycle transition table
//   - A guest order has no owning customer and carries an inline address
//     snapshot plus contact and payment details
type Order struct {
	id          kernel.UUID
	customerID  *kernel.UUID
	destination Destination
	status      Status

	// Guest contact details; empty on identified orders.
	customerName string
	phone        string
	payment      *Payment

	total kernel.Money
	lines []*Line

	isConstructed bool
}

// NewCustomerOrder creates a pending order owned by a customer, delivering
// to a stored address. The total is computed from the given lines.
func NewCustomerOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	destination AddressReference,
	lines []*Line,
) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		customerID:    &customerID,
		destination:   destination,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewGuestOrder creates a pending order with no owning customer, delivering
// to an inline address snapshot and carrying guest contact and payment
// details. The total is computed from the given lines.
func NewGuestOrder(
	id kernel.UUID,
	destination AddressSnapshot,
	customerName string,
	phone string,
	payment Payment,
	lines []*Line,
) (*Order, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		destination:   destination,
		status:        Pending,
		customerName:  customerName,
		phone:         phone,
		payment:       &payment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The persisted total
// is trusted as written; it was computed when the lines were last set.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	destination Destination,
	status Status,
	customerName string,
	phone string,
	payment *Payment,
	total kernel.Money,
	lines []*Line,
) (*Order, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}
	if destination == nil {
		return nil, errs.NewValueIsRequiredError("destination")
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if payment != nil {
		if err := payment.Validate(); err != nil {
			return nil, err
		}
	}
	if err := total.Validate(); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		customerID:    customerID,
		destination:   destination,
		status:        status,
		customerName:  customerName,
		phone:         phone,
		payment:       payment,
		total:         total,
		lines:         lines,
		isConstructed: true,
	}

	if err := o.setID(id); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
// Returns nil for guest orders.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// Destination returns the delivery destination variant.
func (o *Order) Destination() Destination {
	return o.destination
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CustomerName returns the guest contact name, empty on identified orders.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the guest contact phone, empty on identified orders.
func (o *Order) Phone() string {
	return o.phone
}

// Payment returns the guest payment details.
// Returns nil on identified orders.
func (o *Order) Payment() *Payment {
	return o.payment
}

// Total returns the order total: the sum of line subtotals rounded to two
// decimal places, as computed when the lines were last set.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Lines returns the order lines in insertion order.
func (o *Order) Lines() []*Line {
	return o.lines
}

// ChangeStatus moves the order along the lifecycle state machine.
//
// Returns an InvalidTransitionError carrying both endpoints when the
// transition table does not permit the move, including any attempt to
// transition a status to itself.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReplaceLines swaps the order's lines for a new set and recomputes the
// total from the new price snapshots. Used by the administrative update
// path; the snapshots are taken at modification time, so a catalog price
// change since creation is reflected in the new total.
func (o *Order) ReplaceLines(lines []*Line) error {
	return o.setLines(lines)
}

// AssignCustomer reassigns order ownership. Administrative path only.
func (o *Order) AssignCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = &customerID
	return nil
}

// AssignDestination replaces the delivery destination. Administrative path only.
func (o *Order) AssignDestination(destination Destination) error {
	if destination == nil {
		return errs.NewValueIsRequiredError("destination")
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	total := kernel.ZeroMoney()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		total = total.Add(line.Subtotal())
	}

	o.lines = lines
	o.total = total.Round()
	return nil
}
