// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart hydrated with live product data.
// A customer without a cart gets an empty view rather than an error, so the
// storefront can always render a cart page.
//
// Example:
//
//	query, err := NewGetCartQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := NewGetCartQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d items, total %s\n", len(view.Items), view.Total)
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the customer's cart view.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryResponse is the cart read model. CartID is nil when the
// customer has never put anything in a cart.
type GetCartQueryResponse struct {
	CartID *kernel.UUID
	Items  []GetCartQueryItem
	Total  kernel.Money
}

// GetCartQueryItem is one cart line joined with current catalog data.
// Subtotal uses the live price; the binding snapshot happens at checkout.
type GetCartQueryItem struct {
	ItemID      kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ImageURL    string
	UnitPrice   kernel.Money
	Quantity    int
	Subtotal    kernel.Money
}
