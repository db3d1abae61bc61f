package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"edusync/internal/domain/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pkg/errors"
)

// kafkaPublisher implements EventPublisher on top of a watermill Kafka
// publisher. Azure Event Hubs exposes the same protocol on its Kafka endpoint.
type kafkaPublisher struct {
	publisher message.Publisher
	topic     string
	logger    *slog.Logger
}

// NewKafkaPublisher connects to the brokers and publishes every event to topic
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka publisher")
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return newKafkaPublisher(publisher, topic, logger), nil
}

func newKafkaPublisher(publisher message.Publisher, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}
}

// Publish sends the event as one Kafka message with its attributes as headers
func (p *kafkaPublisher) Publish(ctx context.Context, event *service.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msgID := event.ID
	if msgID == "" {
		msgID = watermill.NewUUID()
	}

	msg := message.NewMessage(msgID, payload)
	msg.SetContext(ctx)
	for key, value := range eventAttributes(event) {
		msg.Metadata.Set(key, value)
	}

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return errors.Wrapf(err, "failed to publish %s to %s", event.Type, p.topic)
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("topic", p.topic),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.publisher.Close())
}
