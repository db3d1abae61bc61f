package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/domain/entity"
	"edusync/internal/domain/service"
	mockSvc "edusync/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventDispatcher_SurvivesRequestCancellation(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := newEventDispatcher(publisher, time.Second, newDiscardLogger())

	ctx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-42"))
	release := make(chan struct{})

	publisher.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*service.Event")).
		RunAndReturn(func(publishCtx context.Context, event *service.Event) error {
			<-release
			assert.NoError(t, publishCtx.Err())
			assert.Equal(t, entity.EventCourseCreated, event.Type)
			assert.Equal(t, "req-42", event.RequestID)
			assert.NotEmpty(t, event.ID)

			return nil
		}).
		Once()

	dispatcher.Dispatch(ctx, entity.EventCourseCreated, map[string]string{"title": "Compilers"})
	cancel()
	close(release)

	waitEvents(t, dispatcher)
}

func TestEventDispatcher_PublishFailureIsSwallowed(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := newEventDispatcher(publisher, time.Second, newDiscardLogger())

	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), entity.EventUserRegistered, nil)
	})
	waitEvents(t, dispatcher)
}

func TestEventDispatcher_PublishHonoursTimeout(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := newEventDispatcher(publisher, 20*time.Millisecond, newDiscardLogger())

	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.Event) error {
			<-ctx.Done()

			return ctx.Err()
		}).
		Once()

	dispatcher.Dispatch(context.Background(), entity.EventResultSubmitted, nil)
	waitEvents(t, dispatcher)
}

func TestEventDispatcher_NilIsNoop(t *testing.T) {
	var dispatcher *EventDispatcher

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), entity.EventCourseDeleted, nil)
	})
}
