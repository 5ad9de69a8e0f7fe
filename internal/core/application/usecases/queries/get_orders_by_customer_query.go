package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves one customer's order history.
type GetOrdersByCustomerQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for a customer's orders.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID) (GetOrdersByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerQuery{}, err
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders are requested.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}
