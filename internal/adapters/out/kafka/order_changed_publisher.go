// Package kafka publishes warehouse events to Apache Kafka with
// github.com/segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	kafkaGo "github.com/segmentio/kafka-go"
)

const orderChangedEventType = "warehouse.order.changed"

var _ ports.OrderEventPublisher = (*OrderChangedPublisher)(nil)

// MessageWriter is the part of *kafkaGo.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// OrderChangedEvent is the JSON payload written for every committed order change.
type OrderChangedEvent struct {
	EventID    string             `json:"eventId"`
	OccurredAt time.Time          `json:"occurredAt"`
	OrderID    string             `json:"orderId"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	TotalItems int                `json:"totalItems"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	Items      []OrderChangedItem `json:"items"`
}

type OrderChangedItem struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"priceAtOrder"`
}

// OrderChangedPublisher writes OrderChangedEvent messages keyed by order id,
// so every change of one order lands on the same partition in order.
type OrderChangedPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewOrderChangedPublisher creates a publisher writing to topic on the given brokers.
func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	return NewOrderChangedPublisherWithWriter(&kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func NewOrderChangedPublisherWithWriter(writer MessageWriter) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: writer,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	event := newOrderChangedEvent(o, p.now())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order changed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Headers: []kafkaGo.Header{
			{Key: "event-type", Value: []byte(orderChangedEventType)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish order %s: %w", event.OrderID, err)
	}
	return nil
}

func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

func newOrderChangedEvent(o *order.Order, occurredAt time.Time) OrderChangedEvent {
	items := o.Items()
	lines := make([]OrderChangedItem, 0, len(items))
	for _, item := range items {
		snapshot := item.Product()
		lines = append(lines, OrderChangedItem{
			ProductID:    item.ProductID().String(),
			ProductName:  snapshot.Name(),
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder(),
		})
	}

	return OrderChangedEvent{
		EventID:    uuid.NewString(),
		OccurredAt: occurredAt,
		OrderID:    o.ID().String(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
		TotalItems: o.TotalItems(),
		TotalPrice: o.TotalPrice(),
		Items:      lines,
	}
}
