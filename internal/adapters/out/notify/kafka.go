package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/segmentio/kafka-go"
)

// KafkaClient holds the broker list shared by all writers.
type KafkaClient struct {
	Brokers []string
}

// NewKafkaClient parses a comma-separated broker list. An empty list yields
// a disabled client; callers should skip constructing publishers from it.
func NewKafkaClient(brokersCSV string) *KafkaClient {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &KafkaClient{Brokers: brokers}
}

// Enabled reports whether any broker is configured.
func (c *KafkaClient) Enabled() bool {
	return len(c.Brokers) > 0
}

// NewWriter creates a writer for one topic. Messages are keyed by order id,
// so all events of one order land in the same partition, in order.
func (c *KafkaClient) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

func publishJSON(ctx context.Context, writer *kafka.Writer, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data, Time: time.Now().UTC()})
}

// KafkaPublisher publishes order events to Kafka topics.
type KafkaPublisher struct {
	createdWriter *kafka.Writer
	statusWriter  *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing creation events to
// createdTopic and lifecycle events to statusTopic.
func NewKafkaPublisher(client *KafkaClient, createdTopic, statusTopic string) *KafkaPublisher {
	return &KafkaPublisher{
		createdWriter: client.NewWriter(createdTopic),
		statusWriter:  client.NewWriter(statusTopic),
	}
}

// OrderCreated publishes the creation event keyed by order id.
func (p *KafkaPublisher) OrderCreated(
	ctx context.Context,
	aggregate *order.Order,
	products map[kernel.UUID]product.Product,
) error {
	event := newOrderCreatedEvent(aggregate, products)
	return publishJSON(ctx, p.createdWriter, event.OrderID, event)
}

// StatusChanged publishes the lifecycle event keyed by order id.
func (p *KafkaPublisher) StatusChanged(ctx context.Context, orderID kernel.UUID, newStatus order.Status) error {
	event := newStatusChangedEvent(orderID, newStatus)
	return publishJSON(ctx, p.statusWriter, event.OrderID, event)
}

// Close flushes and closes both writers.
func (p *KafkaPublisher) Close() error {
	if err := p.createdWriter.Close(); err != nil {
		return err
	}
	return p.statusWriter.Close()
}
