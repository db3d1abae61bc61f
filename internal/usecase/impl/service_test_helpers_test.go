package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"edusync/internal/domain/entity"
	"edusync/internal/domain/repository"
	"edusync/internal/domain/service"
	mockRepo "edusync/internal/mocks/repository"
	mockSvc "edusync/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDispatcher returns a dispatcher backed by a mocked publisher. Tests
// must call Wait before returning so the mock sees the publish.
func newTestDispatcher(t *testing.T) (*EventDispatcher, *mockSvc.MockEventPublisher) {
	publisher := mockSvc.NewMockEventPublisher(t)

	return newEventDispatcher(publisher, time.Second, newDiscardLogger()), publisher
}

// expectEvent registers one expected publish of eventType.
func expectEvent(publisher *mockSvc.MockEventPublisher, eventType string) {
	publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == eventType
		})).
		Return(nil).
		Once()
}

// runInTx makes the transaction manager invoke the callback with factory and
// return whatever the callback returns.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newInstructor() *entity.User {
	return &entity.User{
		ID:      uuid.New(),
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Role:    entity.RoleInstructor,
		Version: 1,
	}
}

func newStudent() *entity.User {
	return &entity.User{
		ID:      uuid.New(),
		Name:    "Alan Turing",
		Email:   "alan@example.com",
		Role:    entity.RoleStudent,
		Version: 1,
	}
}

func waitEvents(t *testing.T, dispatcher *EventDispatcher) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dispatcher.Wait(ctx)
}
