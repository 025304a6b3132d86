package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/abdo0vuln/e-commerce/internal/domain"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// Publisher emits order lifecycle events. Publishing is best-effort:
// order placement never fails because the broker is down.
type Publisher interface {
	Publish(ctx context.Context, eventType string, order *domain.Order) error
}

type orderEvent struct {
	EventID     string    `json:"event_id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "order-events",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, order *domain.Order) error {
	payload, err := json.Marshal(orderEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.ID.Hex(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      order.Status,
		Total:       order.Total,
		OccurredAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID.Hex()), // order id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() {
	if err := p.writer.Close(); err != nil {
		log.Printf("error closing kafka writer: %v", err)
	}
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, *domain.Order) error { return nil }
