package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edusync/internal/domain/constants"
	"edusync/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.Event{
		ID:         "evt-1",
		Type:       "CourseCreated",
		RequestID:  "req-42",
		OccurredAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Payload:    map[string]string{"course_id": "c-1"},
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "CourseCreated", received.Message.Attributes[constants.EventTypeAttribute])
	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.OccurredAt, decoded.OccurredAt)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.Publish(context.Background(), &service.Event{ID: "evt-2", Type: "UserRegistered"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher_NeverFails(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	assert.NoError(t, publisher.Publish(context.Background(), &service.Event{Type: "ResultSubmitted"}))
	assert.NoError(t, publisher.Close())
}
