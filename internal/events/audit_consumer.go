package events

import (
	"context"
	"encoding/json"

	"github.com/boyarintsev1/shareit/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// AuditConsumer tails the booking topic and writes a structured audit trail
// of every lifecycle transition.
type AuditConsumer struct {
	consumer *kafka.Consumer
	logger   *zap.Logger
}

// NewAuditConsumer creates an AuditConsumer in the given consumer group.
func NewAuditConsumer(brokers []string, groupID string, logger *zap.Logger) *AuditConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicBookingEvents, logger)
	return &AuditConsumer{consumer: consumer, logger: logger}
}

// Start begins consuming booking events. This blocks until the context is
// cancelled.
func (c *AuditConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *AuditConsumer) Close() error {
	return c.consumer.Close()
}

func (c *AuditConsumer) handleMessage(_ context.Context, msg kafkago.Message) error {
	var event kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // don't retry malformed messages
	}

	switch event.Type {
	case BookingRequested, BookingApproved, BookingRejected, BookingResubmitted, BookingDeleted:
		c.logger.Info("booking transition",
			zap.String("type", event.Type),
			zap.String("key", string(msg.Key)),
			zap.Time("occurred_at", event.Time),
		)
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", event.Type),
		)
	}
	return nil
}
