package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
)

// NotificationPublisher receives one-way, best-effort notifications about
// order events after the corresponding write has committed. The core never
// waits for acknowledgment and never retries; a publish failure must not
// affect the committed write.
type NotificationPublisher interface {
	// OrderCreated announces a newly created order. The product snapshots
	// used to price the order are passed along so subscribers can render
	// line items without a follow-up fetch.
	OrderCreated(ctx context.Context, aggregate *order.Order, products map[kernel.UUID]product.Product) error

	// StatusChanged announces that an order moved to a new lifecycle status.
	StatusChanged(ctx context.Context, orderID kernel.UUID, newStatus order.Status) error
}
