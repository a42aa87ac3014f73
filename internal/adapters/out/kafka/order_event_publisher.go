// Package kafka publishes order state changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderStateChangedMessage is the JSON body written for every accepted transition.
type OrderStateChangedMessage struct {
	ID         string    `json:"id"`
	OrderID    int64     `json:"order_id"`
	Event      string    `json:"event"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderEventPublisher struct {
	writer messageWriter
}

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

// NewOrderEventPublisher writes to topic on the brokers at addrs. The writer
// runs in async mode: WriteMessages only enqueues, and delivery failures are
// reported to logger from the writer's completion callback.
func NewOrderEventPublisher(topic string, logger *slog.Logger, addrs ...string) *OrderEventPublisher {
	logger = logger.With("component", "kafka_publisher", "topic", topic)

	return newOrderEventPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		Completion:             completionLogger(logger),
	})
}

func completionLogger(logger *slog.Logger) func([]kafka.Message, error) {
	return func(messages []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range messages {
			logger.Warn("Failed to deliver order state change",
				"order_id", string(m.Key),
				"error", err,
			)
		}
	}
}

func newOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// Publish writes one message keyed by order id so that all changes of one
// order land on the same partition in order.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderStateChangedEvent) error {
	body, err := json.Marshal(OrderStateChangedMessage{
		ID:         event.ID.String(),
		OrderID:    event.OrderID.Int64(),
		Event:      event.Event.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: body,
		Time:  event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NopOrderEventPublisher drops every event. It is used when no broker is configured.
type NopOrderEventPublisher struct{}

func (NopOrderEventPublisher) Publish(context.Context, ports.OrderStateChangedEvent) error {
	return nil
}
