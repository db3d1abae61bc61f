package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"edusync/config"
	"edusync/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler() *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func push(t *testing.T, h *PushHandler, body []byte) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))

	return rec.Code
}

func envelope(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Subscription = "projects/local/subscriptions/edusync-events"
	msg.Message.MessageID = "m-1"
	msg.Message.Data = data
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func TestPushHandler_HandlePush(t *testing.T) {
	encode := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name       string
		body       []byte
		wantStatus int
	}{
		{
			name:       "known event",
			body:       envelope(t, encode(`{"id":"e-1","type":"CourseDeleted","payload":{"course_id":"c"}}`), nil),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "type taken from attributes",
			body:       envelope(t, encode(`{"id":"e-2","payload":{}}`), map[string]string{"event_type": "UserRegistered"}),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown event is acknowledged",
			body:       envelope(t, encode(`{"id":"e-3","type":"SomethingElse"}`), nil),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "data is not base64",
			body:       envelope(t, "%%%", nil),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not an event",
			body:       envelope(t, encode("not json"), nil),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "body is not an envelope",
			body:       []byte("{"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, push(t, newTestPushHandler(), tt.body))
		})
	}
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	h := newTestPushHandler()
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	assert.Equal(t, http.StatusUnauthorized, push(t, h, envelope(t, "", nil)))
}

func TestNewPushHandler_VerifiesGooglePushOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.NotNil(t, h.verify)

	cfg.Env.Env = "develop"
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.Nil(t, h.verify)
}
