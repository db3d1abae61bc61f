package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"edusync/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends events to a Cloud Pub/Sub topic. A push subscription
// on that topic delivers them to edusync-worker.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

func topicName(projectID, topicID string) string {
	return "projects/" + projectID + "/topics/" + topicID
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID
// does not exist, so a typo surfaces at startup rather than on first publish.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := topicName(projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "pubsub topic %s", topic)
	}

	logger.Info("Google Pub/Sub publisher initialized", slog.String("topic", topic))

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topic),
		topic:     topic,
		logger:    logger,
	}, nil
}

func newPubSubMessage(event *service.Event) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	return &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}, nil
}

// Publish blocks until the server acknowledges the message or ctx expires.
func (p *googlePublisher) Publish(ctx context.Context, event *service.Event) error {
	msg, err := newPubSubMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, p.topic)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
