package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes roster events to a single topic, keyed by activity
// name so all changes to one roster land on the same partition.
type KafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
		timeout: timeout,
	}
}

// PublishSignup emits a roster.signup event.
func (p *KafkaPublisher) PublishSignup(ctx context.Context, activity, email string) error {
	return p.publish(ctx, TypeSignup, activity, email)
}

// PublishUnregister emits a roster.unregistered event.
func (p *KafkaPublisher) PublishUnregister(ctx context.Context, activity, email string) error {
	return p.publish(ctx, TypeUnregister, activity, email)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, activity, email string) error {
	msg, err := newMessage(RosterChanged{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// newMessage encodes the event as a Kafka record: JSON body, activity-name
// key, and event_type/event_id headers for header-only routing.
func newMessage(event RosterChanged) (kafka.Message, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.Activity),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}, nil
}

// NoopPublisher drops roster events; used when no brokers are configured.
type NoopPublisher struct{}

// PublishSignup implements domain.RosterPublisher.
func (NoopPublisher) PublishSignup(ctx context.Context, activity, email string) error {
	return nil
}

// PublishUnregister implements domain.RosterPublisher.
func (NoopPublisher) PublishUnregister(ctx context.Context, activity, email string) error {
	return nil
}
