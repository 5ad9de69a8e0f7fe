package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are written and deleted only as a unit. The
// repository is a dumb persistence boundary: it never enforces the status
// transition table, which is the aggregate's job.
type OrderRepository interface {
	// Add persists a new order aggregate with all its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// replacing its line set with the aggregate's current one.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Inside a transaction the order row is locked for the duration, so
	// concurrent status changes on the same order serialize.
	// Returns ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomer retrieves all orders owned by the given customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order and its lines. Deleting an order that does
	// not exist is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}
