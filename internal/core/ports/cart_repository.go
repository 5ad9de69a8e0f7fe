package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Carts are looked up by their owning customer; a line is only ever
// reachable through its owner's cart, which is what makes ownership checks
// report foreign lines as not found.
type CartRepository interface {
	// Add persists a new, typically empty, cart aggregate.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists the cart's current line set as a unit: lines removed
	// from the aggregate are deleted, new and changed lines are written.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the customer's cart with all lines.
	// Inside a transaction the cart row is locked for the duration, so a
	// concurrent checkout and cart mutation on the same cart serialize.
	// Returns ObjectNotFoundError if the customer has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
