package adapters

import (
	"context"
	"time"

	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/features/custody/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaWriter is the subset of kafka.Writer the publisher needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher writes events to a Kafka topic keyed by shipment ID, so all
// events of one shipment land on one partition in emission order.
type KafkaEventPublisher struct {
	writer KafkaWriter
	logger *zap.Logger
}

// NewKafkaEventPublisher creates a publisher writing to topic on brokers.
func NewKafkaEventPublisher(brokers []string, topic string) *KafkaEventPublisher {
	return NewKafkaEventPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	})
}

// NewKafkaEventPublisherWithWriter allows injecting a test writer.
func NewKafkaEventPublisherWithWriter(w KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer: w,
		logger: logger.Get(),
	}
}

// Emit writes event. Failures are logged and otherwise ignored.
func (p *KafkaEventPublisher) Emit(ctx context.Context, event domain.Event) {
	env, data, err := encodeEvent(event)
	if err != nil {
		p.logger.Error("Failed to encode event", zap.String("type", event.EventType()), zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(env.ShipmentID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(env.Type)},
			{Key: "event-id", Value: []byte(env.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("Failed to write event to kafka",
			zap.String("event_id", env.ID),
			zap.String("type", env.Type),
			zap.Error(err),
		)
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}
