package impl

import (
	"context"
	"log/slog"

	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	"edusync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type assessmentService struct {
	txManager      repository.TransactionManager
	assessmentRepo repository.AssessmentRepository
	courseRepo     repository.CourseRepository
	events         *EventDispatcher
	logger         *slog.Logger
}

// AssessmentServiceParams holds dependencies for AssessmentService, injected by Fx.
type AssessmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AssessmentRepo repository.AssessmentRepository
	CourseRepo     repository.CourseRepository
	Events         *EventDispatcher
	Logger         *slog.Logger
}

// NewAssessmentService creates a new assessment service instance
func NewAssessmentService(params AssessmentServiceParams) usecase.AssessmentUsecase {
	return &assessmentService{
		txManager:      params.TxManager,
		assessmentRepo: params.AssessmentRepo,
		courseRepo:     params.CourseRepo,
		events:         params.Events,
		logger:         params.Logger,
	}
}

func (s *assessmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *assessmentService) ListAssessments(ctx context.Context) ([]*entity.Assessment, error) {
	assessments, err := s.assessmentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assessments")
	}

	return assessments, nil
}

func (s *assessmentService) GetAssessment(ctx context.Context, id uuid.UUID) (*entity.Assessment, error) {
	assessment, err := s.assessmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, repository.ErrAssessmentNotFound, domainerrors.ErrAssessmentNotFound, "failed to find assessment")
	}

	return assessment, nil
}

// ListByCourse returns an empty list for courses without assessments.
func (s *assessmentService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Assessment, error) {
	assessments, err := s.assessmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assessments by course")
	}

	return assessments, nil
}

func (s *assessmentService) CreateAssessment(ctx context.Context, input *usecase.AssessmentInput) (*entity.Assessment, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	assessment := &entity.Assessment{
		CourseID:  input.CourseID,
		Title:     input.Title,
		Questions: input.Questions,
		MaxScore:  input.MaxScore,
	}
	if input.ID != nil {
		assessment.ID = *input.ID
	}

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, errors.Wrap(err, "failed to create assessment")
	}

	s.events.Dispatch(ctx, entity.EventAssessmentCreated, &assessmentCreatedPayload{
		AssessmentID: assessment.ID,
		CourseID:     assessment.CourseID,
		Title:        assessment.Title,
		MaxScore:     assessment.MaxScore,
	})

	return assessment, nil
}

func (s *assessmentService) UpdateAssessment(ctx context.Context, id uuid.UUID, input *usecase.AssessmentInput) (*entity.Assessment, error) {
	if input.ID != nil && *input.ID != id {
		return nil, domainerrors.ErrIDMismatch
	}

	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	assessment, err := s.GetAssessment(ctx, id)
	if err != nil {
		return nil, err
	}

	assessment.CourseID = input.CourseID
	assessment.Title = input.Title
	assessment.Questions = input.Questions
	assessment.MaxScore = input.MaxScore
	assessment.Version = expectedVersion(input.Version, assessment.Version)

	if err := s.assessmentRepo.Update(ctx, assessment); err != nil {
		return nil, translateRepoError(err, repository.ErrAssessmentNotFound, domainerrors.ErrAssessmentNotFound, "failed to update assessment")
	}

	return assessment, nil
}

// DeleteAssessment removes the assessment and its results in one transaction.
func (s *assessmentService) DeleteAssessment(ctx context.Context, id uuid.UUID) (*entity.DeletionReport, error) {
	var report *entity.DeletionReport
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var cascadeErr error
		report, cascadeErr = deleteCascade(ctx, repoFactory, entity.DeletionRootAssessment, id)

		return cascadeErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute assessment deletion transaction")
	}

	s.log(ctx).Info("Assessment deleted",
		slog.Any("assessmentID", id),
		slog.Int64("results", report.Results),
	)

	return report, nil
}

func (s *assessmentService) validate(ctx context.Context, input *usecase.AssessmentInput) error {
	if input.MaxScore < 0 {
		return domainerrors.ErrValidationFailed.WithMessage("Max score must not be negative")
	}

	if _, err := s.courseRepo.FindByID(ctx, input.CourseID); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return domainerrors.ErrInvalidReference.WithMessage("Invalid course ID.")
		}

		return errors.Wrap(err, "failed to find course")
	}

	return nil
}
