// Package handler contains the push endpoint of the event worker.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"edusync/config"
	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/domain/constants"
	"edusync/internal/domain/entity"
	"edusync/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// pushedEvent is the wire form of a domain event inside a push message.
type pushedEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	RequestID  string          `json:"request_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// tokenVerifier checks the OIDC token attached to a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler receives EduSync events delivered by Pub/Sub push (or the local
// publisher) and records them in the log.
type PushHandler struct {
	verify tokenVerifier
	logger *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified
// for the google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{logger: params.Logger}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush acknowledges a message with 204. Malformed messages get 400 so
// the broker can dead-letter them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event pushedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.Type == "" {
		event.Type = pushMsg.Message.Attributes[constants.EventTypeAttribute]
	}

	attrs := []any{
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("origin_request_id", event.RequestID),
		slog.Time("occurred_at", event.OccurredAt),
	}

	if !isKnownEvent(event.Type) {
		logger.Warn("[Worker] Ignoring unknown event type", attrs...)

		return c.NoContent(http.StatusNoContent)
	}

	logger.Info("[Worker] Event received", append(attrs, slog.String("payload", string(event.Payload)))...)

	return c.NoContent(http.StatusNoContent)
}

func isKnownEvent(eventType string) bool {
	switch eventType {
	case entity.EventUserRegistered,
		entity.EventCourseCreated,
		entity.EventCourseDeleted,
		entity.EventAssessmentCreated,
		entity.EventResultSubmitted:
		return true
	default:
		return false
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
