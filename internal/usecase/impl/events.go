package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"edusync/config"
	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// EventDispatcher publishes domain events in the background. Publishing is at
// most once: failures are logged and never reach the caller.
type EventDispatcher struct {
	publisher service.EventPublisher
	timeout   time.Duration
	logger    *slog.Logger
	inflight  sync.WaitGroup
}

// EventDispatcherParams holds dependencies for EventDispatcher, injected by Fx.
type EventDispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEventDispatcher creates the dispatcher and drains in-flight events on shutdown.
func NewEventDispatcher(params EventDispatcherParams) *EventDispatcher {
	timeout := defaultPublishTimeout
	if params.Config != nil && params.Config.PubSub != nil && params.Config.PubSub.PublishTimeout > 0 {
		timeout = params.Config.PubSub.PublishTimeout
	}

	dispatcher := newEventDispatcher(params.Publisher, timeout, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			dispatcher.Wait(ctx)

			return nil
		},
	})

	return dispatcher
}

func newEventDispatcher(publisher service.EventPublisher, timeout time.Duration, logger *slog.Logger) *EventDispatcher {
	return &EventDispatcher{
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}
}

// Dispatch publishes the event on its own goroutine. The request context only
// contributes values: its cancellation does not abort the publish.
func (d *EventDispatcher) Dispatch(ctx context.Context, eventType string, payload any) {
	if d == nil || d.publisher == nil {
		return
	}

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	detached := context.WithoutCancel(ctx)

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		publishCtx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()

		if err := d.publisher.Publish(publishCtx, event); err != nil {
			logger.Warn("Failed to publish event",
				slog.String("event_type", event.Type),
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until every dispatched event finished or ctx is done.
func (d *EventDispatcher) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		d.logger.Warn("Shutting down with events still in flight")
	}
}

// --- Event payloads ---

type userRegisteredPayload struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

type courseCreatedPayload struct {
	CourseID     uuid.UUID  `json:"course_id"`
	Title        string     `json:"title"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	MediaURL     string     `json:"media_url,omitempty"`
}

type courseDeletedPayload struct {
	CourseID    uuid.UUID `json:"course_id"`
	Assessments int64     `json:"assessments"`
	Results     int64     `json:"results"`
}

type assessmentCreatedPayload struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
	CourseID     uuid.UUID `json:"course_id"`
	Title        string    `json:"title"`
	MaxScore     int       `json:"max_score"`
}
