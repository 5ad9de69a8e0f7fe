// Package notify publishes order notifications to subscribers.
// Two transports are provided: a Kafka producer for downstream services and
// a websocket hub for live storefront and kitchen dashboards. Both are
// best-effort; a failed publish never affects the committed write it follows.
package notify

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
)

// OrderCreatedEvent is the wire payload announcing a new order.
type OrderCreatedEvent struct {
	OrderID      string                  `json:"orderId"`
	CustomerID   *string                 `json:"customerId,omitempty"`
	CustomerName string                  `json:"customerName,omitempty"`
	Status       string                  `json:"status"`
	Total        string                  `json:"total"`
	Items        []OrderCreatedEventItem `json:"items"`
}

// OrderCreatedEventItem is one line of the created order, enriched with the
// product name so subscribers can render it without a catalog lookup.
type OrderCreatedEventItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

// StatusChangedEvent is the wire payload announcing a lifecycle move.
type StatusChangedEvent struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func newOrderCreatedEvent(aggregate *order.Order, products map[kernel.UUID]product.Product) OrderCreatedEvent {
	event := OrderCreatedEvent{
		OrderID:      aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total().String(),
		Items:        make([]OrderCreatedEventItem, 0, len(aggregate.Lines())),
	}

	if id := aggregate.CustomerID(); id != nil {
		s := id.String()
		event.CustomerID = &s
	}

	for _, line := range aggregate.Lines() {
		item := OrderCreatedEventItem{
			ProductID: line.ProductID().String(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().String(),
		}
		if resolved, ok := products[line.ProductID()]; ok {
			item.ProductName = resolved.Name()
		}
		event.Items = append(event.Items, item)
	}

	return event
}

func newStatusChangedEvent(orderID kernel.UUID, newStatus order.Status) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID: orderID.String(),
		Status:  newStatus.String(),
	}
}
