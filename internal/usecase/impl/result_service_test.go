package impl

import (
	"context"
	"testing"
	"time"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	mockRepo "edusync/internal/mocks/repository"
	mockSvc "edusync/internal/mocks/service"
	"edusync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type resultServiceFixtures struct {
	service        *resultService
	resultRepo     *mockRepo.MockResultRepository
	assessmentRepo *mockRepo.MockAssessmentRepository
	userRepo       *mockRepo.MockUserRepository
	publisher      *mockSvc.MockEventPublisher
	events         *EventDispatcher
}

func createTestResultService(t *testing.T) resultServiceFixtures {
	fx := resultServiceFixtures{
		resultRepo:     mockRepo.NewMockResultRepository(t),
		assessmentRepo: mockRepo.NewMockAssessmentRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
	}
	fx.events, fx.publisher = newTestDispatcher(t)

	fx.service = NewResultService(ResultServiceParams{
		ResultRepo:     fx.resultRepo,
		AssessmentRepo: fx.assessmentRepo,
		UserRepo:       fx.userRepo,
		Events:         fx.events,
		Logger:         newDiscardLogger(),
	}).(*resultService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func TestResultService_CreateResult_DefaultsAttemptDate(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()
	assessmentID := uuid.New()
	student := newStudent()

	fx.assessmentRepo.EXPECT().FindByID(ctx, assessmentID).Return(&entity.Assessment{ID: assessmentID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)
	fx.resultRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Result")).Return(nil)
	expectEvent(fx.publisher, entity.EventResultSubmitted)

	result, err := fx.service.CreateResult(ctx, &usecase.ResultInput{
		AssessmentID: &assessmentID,
		UserID:       &student.ID,
		Score:        87,
	})
	waitEvents(t, fx.events)

	require.NoError(t, err)
	assert.Equal(t, fixedNow, result.AttemptDate)
	assert.Equal(t, 87, result.Score)
}

func TestResultService_CreateResult_KeepsAttemptDateInUTC(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()
	taipei := time.FixedZone("UTC+8", 8*60*60)
	attempt := time.Date(2025, 1, 2, 8, 0, 0, 0, taipei)

	fx.resultRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	expectEvent(fx.publisher, entity.EventResultSubmitted)

	result, err := fx.service.CreateResult(ctx, &usecase.ResultInput{Score: 1, AttemptDate: &attempt})
	waitEvents(t, fx.events)

	require.NoError(t, err)
	assert.Equal(t, time.UTC, result.AttemptDate.Location())
	assert.True(t, attempt.Equal(result.AttemptDate))
}

func TestResultService_CreateResult_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(fx resultServiceFixtures, input *usecase.ResultInput)
		input   func() *usecase.ResultInput
		wantErr *domainerrors.BaseError
		wantMsg string
	}{
		{
			name:    "negative score",
			setup:   func(resultServiceFixtures, *usecase.ResultInput) {},
			input:   func() *usecase.ResultInput { return &usecase.ResultInput{Score: -5} },
			wantErr: domainerrors.ErrValidationFailed,
			wantMsg: "Score must not be negative",
		},
		{
			name: "unknown assessment",
			setup: func(fx resultServiceFixtures, input *usecase.ResultInput) {
				fx.assessmentRepo.EXPECT().FindByID(ctx, *input.AssessmentID).Return(nil, repository.ErrAssessmentNotFound)
			},
			input: func() *usecase.ResultInput {
				id := uuid.New()
				return &usecase.ResultInput{AssessmentID: &id}
			},
			wantErr: domainerrors.ErrInvalidReference,
			wantMsg: "Invalid assessment ID.",
		},
		{
			name: "unknown user",
			setup: func(fx resultServiceFixtures, input *usecase.ResultInput) {
				fx.userRepo.EXPECT().FindByID(ctx, *input.UserID).Return(nil, repository.ErrUserNotFound)
			},
			input: func() *usecase.ResultInput {
				id := uuid.New()
				return &usecase.ResultInput{UserID: &id}
			},
			wantErr: domainerrors.ErrInvalidReference,
			wantMsg: "Invalid user ID.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestResultService(t)
			input := tt.input()
			tt.setup(fx, input)

			_, err := fx.service.CreateResult(ctx, input)

			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, tt.wantMsg, appErrorMessage(t, err))
		})
	}
}

func TestResultService_UpdateResult(t *testing.T) {
	ctx := context.Background()

	t.Run("id mismatch", func(t *testing.T) {
		fx := createTestResultService(t)
		other := uuid.New()

		_, err := fx.service.UpdateResult(ctx, uuid.New(), &usecase.ResultInput{ID: &other})

		assert.Equal(t, domainerrors.ErrIDMismatch, err)
	})

	t.Run("keeps attempt date when omitted", func(t *testing.T) {
		fx := createTestResultService(t)
		stored := &entity.Result{ID: uuid.New(), Score: 10, AttemptDate: fixedNow.Add(-time.Hour), Version: 2}
		fx.resultRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		fx.resultRepo.EXPECT().Update(ctx, stored).Return(nil)

		updated, err := fx.service.UpdateResult(ctx, stored.ID, &usecase.ResultInput{Score: 42})

		require.NoError(t, err)
		assert.Equal(t, 42, updated.Score)
		assert.Equal(t, fixedNow.Add(-time.Hour), updated.AttemptDate)
		assert.Nil(t, updated.AssessmentID)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestResultService(t)
		id := uuid.New()
		fx.resultRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrResultNotFound)

		_, err := fx.service.UpdateResult(ctx, id, &usecase.ResultInput{})

		assert.Equal(t, domainerrors.ErrResultNotFound, err)
	})
}

func TestResultService_DeleteResult(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		fx := createTestResultService(t)
		id := uuid.New()
		fx.resultRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{id}).Return(1, nil)

		assert.NoError(t, fx.service.DeleteResult(ctx, id))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestResultService(t)
		id := uuid.New()
		fx.resultRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{id}).Return(0, nil)

		assert.Equal(t, domainerrors.ErrResultNotFound, fx.service.DeleteResult(ctx, id))
	})
}

func TestResultService_ListForInstructorByCourse(t *testing.T) {
	fx := createTestResultService(t)
	ctx := context.Background()
	courseID := uuid.New()
	rows := []*entity.InstructorResult{{ResultID: uuid.New(), StudentName: entity.UnknownStudentName, MaxScore: 50}}

	fx.resultRepo.EXPECT().ListForInstructorByCourse(ctx, courseID).Return(rows, nil)

	got, err := fx.service.ListForInstructorByCourse(ctx, courseID)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
