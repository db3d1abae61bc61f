package pubsub

import (
	"context"
	"testing"

	"edusync/config"
	"edusync/internal/domain/constants"
	"edusync/internal/domain/service"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderPublisher_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr string
	}{
		{"unknown provider", config.PubSubConfig{Provider: "sqs"}, "unknown pubsub provider: sqs"},
		{"local without endpoint", config.PubSubConfig{Provider: constants.PubSubProviderLocal}, "local endpoint is required"},
		{"google without project", config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, "project ID is required"},
		{"google without topic", config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, "topic ID is required"},
		{"kafka without brokers", config.PubSubConfig{Provider: constants.PubSubProviderKafka}, "brokers are required"},
		{"kafka without topic", config.PubSubConfig{Provider: constants.PubSubProviderKafka, Brokers: []string{"localhost:9092"}}, "topic is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			_, err := newProviderPublisher(context.Background(), &cfg, discardLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewProviderPublisher_Local(t *testing.T) {
	cfg := &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"}

	publisher, err := newProviderPublisher(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(&service.Event{ID: "e1", Type: "CourseDeleted"})

	assert.Equal(t, map[string]string{
		constants.EventTypeAttribute: "CourseDeleted",
		"event_id":                   "e1",
	}, attrs)
}

type recordingPublisher struct {
	topic    string
	messages []*message.Message
	closed   bool
}

func (r *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	r.topic = topic
	r.messages = append(r.messages, messages...)

	return nil
}

func (r *recordingPublisher) Close() error {
	r.closed = true

	return nil
}

func TestKafkaPublisher_SetsMetadata(t *testing.T) {
	recorder := &recordingPublisher{}
	publisher := newKafkaPublisher(recorder, "edusync-events", discardLogger())

	event := &service.Event{ID: "evt-9", Type: "AssessmentCreated", RequestID: "req-9"}
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, recorder.messages, 1)
	msg := recorder.messages[0]
	assert.Equal(t, "edusync-events", recorder.topic)
	assert.Equal(t, "evt-9", msg.UUID)
	assert.Equal(t, "AssessmentCreated", msg.Metadata.Get(constants.EventTypeAttribute))
	assert.Equal(t, "req-9", msg.Metadata.Get("request_id"))
	assert.Contains(t, string(msg.Payload), `"type":"AssessmentCreated"`)

	require.NoError(t, publisher.Close())
	assert.True(t, recorder.closed)
}
