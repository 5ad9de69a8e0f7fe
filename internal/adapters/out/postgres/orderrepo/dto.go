// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The two destination variants share one table: a reference order fills
// AddressID, a guest order fills the inline address columns. Exactly one of
// the two groups is populated per row.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`

	AddressID  *uuid.UUID `gorm:"type:uuid"`
	Street     *string
	Number     *string
	District   *string
	Complement *string

	CustomerName  string
	Phone         string
	PaymentMethod *string
	ChangeFor     *decimal.Decimal `gorm:"type:numeric(12,2)"`

	Status    string          `gorm:"index"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line with its price snapshot.
type OrderLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Phone:        aggregate.Phone(),
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total().Decimal(),
	}

	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		dto.CustomerID = &raw
	}

	switch destination := aggregate.Destination().(type) {
	case order.AddressReference:
		raw := destination.AddressID().Bytes()
		dto.AddressID = &raw
	case order.AddressSnapshot:
		street := destination.Street()
		number := destination.Number()
		district := destination.District()
		complement := destination.Complement()
		dto.Street = &street
		dto.Number = &number
		dto.District = &district
		dto.Complement = &complement
	}

	if payment := aggregate.Payment(); payment != nil {
		method := payment.Method().String()
		dto.PaymentMethod = &method
		if changeFor := payment.ChangeFor(); changeFor != nil {
			raw := changeFor.Decimal()
			dto.ChangeFor = &raw
		}
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		})
	}
	dto.Lines = lines

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the destination variant from whichever column group is populated.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	destination, err := destinationFromDTO(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	payment, err := paymentFromDTO(dto)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineFromDTO(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		destination,
		status,
		dto.CustomerName,
		dto.Phone,
		payment,
		total,
		lines,
	)
}

func destinationFromDTO(dto OrderDTO) (order.Destination, error) {
	if dto.AddressID != nil {
		addressID, err := kernel.UUIDFromBytes((*dto.AddressID)[:])
		if err != nil {
			return nil, err
		}
		return order.NewAddressReference(addressID)
	}

	var street, number, district, complement string
	if dto.Street != nil {
		street = *dto.Street
	}
	if dto.Number != nil {
		number = *dto.Number
	}
	if dto.District != nil {
		district = *dto.District
	}
	if dto.Complement != nil {
		complement = *dto.Complement
	}

	return order.NewAddressSnapshot(street, number, district, complement)
}

func paymentFromDTO(dto OrderDTO) (*order.Payment, error) {
	if dto.PaymentMethod == nil {
		return nil, nil //nolint:nilnil //absent payment details are a valid state
	}

	method, err := order.PaymentMethodFromString(*dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var changeFor *kernel.Money
	if dto.ChangeFor != nil {
		amount, moneyErr := kernel.NewMoney(*dto.ChangeFor)
		if moneyErr != nil {
			return nil, moneyErr
		}
		changeFor = &amount
	}

	payment, err := order.NewPayment(method, changeFor)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func lineFromDTO(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, productID, dto.Quantity, unitPrice)
}
