package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Hub broadcasts order events to connected websocket clients.
// Dashboards subscribe once and receive every event; there is no per-client
// filtering. A slow or dead client is dropped on its first failed write.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub ready to accept connections.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Subscribe upgrades the HTTP request to a websocket connection and blocks
// until the client disconnects. Inbound messages are read and discarded,
// which also services the connection's control frames.
func (h *Hub) Subscribe(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			h.drop(conn)
			return nil
		}
	}
}

// OrderCreated broadcasts the creation event to all connected clients.
func (h *Hub) OrderCreated(
	_ context.Context,
	aggregate *order.Order,
	products map[kernel.UUID]product.Product,
) error {
	return h.broadcast(newOrderCreatedEvent(aggregate, products))
}

// StatusChanged broadcasts the lifecycle event to all connected clients.
func (h *Hub) StatusChanged(_ context.Context, orderID kernel.UUID, newStatus order.Status) error {
	return h.broadcast(newStatusChangedEvent(orderID, newStatus))
}

func (h *Hub) broadcast(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err = conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Debug("dropping websocket client", "error", err)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}

	return nil
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
