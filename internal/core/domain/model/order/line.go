package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine or RestoreLine factory functions.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is an order line: a product reference, quantity, and the unit price
// snapshotted from the catalog at the moment the order was created or last
// modified. The snapshot makes the line immune to later catalog price
// changes. Lines are owned exclusively by their Order.
type Line struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewLine creates an order line with a snapshotted unit price.
func NewLine(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	line := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs an order line from persistence.
// Applies the same validation rules as NewLine.
func RestoreLine(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	return NewLine(id, productID, quantity, unitPrice)
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ProductID returns the referenced product's identifier.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken when the line was created.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unit price times quantity, unrounded.
// Rounding happens once, on the order total.
func (l *Line) Subtotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}
