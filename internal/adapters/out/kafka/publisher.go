// Package kafka publishes order integration events to the message bus.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// StatusChangedPublisher writes order status events to a Kafka topic.
// Events are keyed by order ID so all changes of one order land in the same
// partition and stay ordered.
type StatusChangedPublisher struct {
	writer *kafka.Writer
}

// NewStatusChangedPublisher creates a publisher for the given brokers and topic.
func NewStatusChangedPublisher(brokers []string, topic string) *StatusChangedPublisher {
	return &StatusChangedPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishStatusChanged writes one status changed event.
func (p *StatusChangedPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *StatusChangedPublisher) Close() error {
	return p.writer.Close()
}
