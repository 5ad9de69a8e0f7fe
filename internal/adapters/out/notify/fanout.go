package notify

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"storefront/internal/core/ports"
)

// Fanout forwards each notification to every configured publisher.
// A failing transport is logged and skipped; the remaining transports still
// receive the event.
type Fanout struct {
	publishers []ports.NotificationPublisher
}

// NewFanout creates a fanout over the given publishers.
func NewFanout(publishers ...ports.NotificationPublisher) *Fanout {
	return &Fanout{publishers: publishers}
}

// OrderCreated forwards the creation event to all publishers.
func (f *Fanout) OrderCreated(
	ctx context.Context,
	aggregate *order.Order,
	products map[kernel.UUID]product.Product,
) error {
	for _, publisher := range f.publishers {
		if err := publisher.OrderCreated(ctx, aggregate, products); err != nil {
			slog.Warn("order created notification failed",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}
	return nil
}

// StatusChanged forwards the lifecycle event to all publishers.
func (f *Fanout) StatusChanged(ctx context.Context, orderID kernel.UUID, newStatus order.Status) error {
	for _, publisher := range f.publishers {
		if err := publisher.StatusChanged(ctx, orderID, newStatus); err != nil {
			slog.Warn("status change notification failed",
				"orderId", orderID.String(), "status", newStatus.String(), "error", err)
		}
	}
	return nil
}
