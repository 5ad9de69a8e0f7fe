package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler retrieves a customer's order history.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order
// history queries. Requires a GORM database connection for query execution.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the query for the customer's orders, newest first.
// A customer with no orders gets an empty slice, not an error.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrderViews(ctx, h.db,
		"WHERE customer_id = ? ORDER BY created_at DESC",
		query.CustomerID().Bytes())
}
