package events

import (
	"context"
	"time"

	"github.com/boyarintsev1/shareit/internal/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopicBookingEvents carries every booking lifecycle transition.
const TopicBookingEvents = "booking.events"

// Booking event types on TopicBookingEvents.
const (
	BookingRequested   = "booking.requested"
	BookingApproved    = "booking.approved"
	BookingRejected    = "booking.rejected"
	BookingResubmitted = "booking.resubmitted"
	BookingDeleted     = "booking.deleted"
)

// BookingRequestedEvent is published when a booker files a new request.
type BookingRequestedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ItemID     uuid.UUID `json:"item_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingDecidedEvent is published for both approval outcomes; Type on the
// envelope distinguishes them.
type BookingDecidedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ItemID     uuid.UUID `json:"item_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Approved   bool      `json:"approved"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingResubmittedEvent is published when a booker edits a request back
// into the approval queue.
type BookingResubmittedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ItemID     uuid.UUID `json:"item_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingDeletedEvent is published when a booking record is removed.
type BookingDeletedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher abstracts event publication so application services can be
// tested without a broker.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, data interface{})
}

// KafkaPublisher publishes CloudEvents to the booking topic.
type KafkaPublisher struct {
	producer *kafka.Producer
	source   string
	logger   *zap.Logger
}

// NewKafkaPublisher creates a Publisher backed by the given producer.
func NewKafkaPublisher(producer *kafka.Producer, source string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, source: source, logger: logger}
}

// Publish wraps the payload in a CloudEvent and writes it to the booking
// topic. Failures are logged, not propagated: event delivery must never roll
// back a committed state change.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, data interface{}) {
	event, err := kafka.NewCloudEvent(p.source, eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, key, event); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
