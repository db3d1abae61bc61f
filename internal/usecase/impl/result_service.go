package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	"edusync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type resultService struct {
	resultRepo     repository.ResultRepository
	assessmentRepo repository.AssessmentRepository
	userRepo       repository.UserRepository
	events         *EventDispatcher
	now            func() time.Time
	logger         *slog.Logger
}

// ResultServiceParams holds dependencies for ResultService, injected by Fx.
type ResultServiceParams struct {
	fx.In

	ResultRepo     repository.ResultRepository
	AssessmentRepo repository.AssessmentRepository
	UserRepo       repository.UserRepository
	Events         *EventDispatcher
	Logger         *slog.Logger
}

// NewResultService creates a new result service instance
func NewResultService(params ResultServiceParams) usecase.ResultUsecase {
	return &resultService{
		resultRepo:     params.ResultRepo,
		assessmentRepo: params.AssessmentRepo,
		userRepo:       params.UserRepo,
		events:         params.Events,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (s *resultService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *resultService) ListResults(ctx context.Context) ([]*entity.Result, error) {
	results, err := s.resultRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list results")
	}

	return results, nil
}

func (s *resultService) GetResult(ctx context.Context, id uuid.UUID) (*entity.Result, error) {
	result, err := s.resultRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, repository.ErrResultNotFound, domainerrors.ErrResultNotFound, "failed to find result")
	}

	return result, nil
}

func (s *resultService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserResult, error) {
	results, err := s.resultRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list results by user")
	}

	return results, nil
}

func (s *resultService) ListForInstructorByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.InstructorResult, error) {
	results, err := s.resultRepo.ListForInstructorByCourse(ctx, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list course results")
	}

	return results, nil
}

// CreateResult records an attempt. Unset attempt dates default to now (UTC).
func (s *resultService) CreateResult(ctx context.Context, input *usecase.ResultInput) (*entity.Result, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	result := &entity.Result{
		AssessmentID: input.AssessmentID,
		UserID:       input.UserID,
		Score:        input.Score,
		AttemptDate:  s.attemptDate(input.AttemptDate),
	}
	if input.ID != nil {
		result.ID = *input.ID
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, errors.Wrap(err, "failed to create result")
	}

	s.events.Dispatch(ctx, entity.EventResultSubmitted, &entity.UserResult{
		ResultID:     result.ID,
		AssessmentID: result.AssessmentID,
		Score:        result.Score,
		AttemptDate:  result.AttemptDate,
	})

	s.log(ctx).Debug("Result recorded", slog.Any("resultID", result.ID))

	return result, nil
}

func (s *resultService) UpdateResult(ctx context.Context, id uuid.UUID, input *usecase.ResultInput) (*entity.Result, error) {
	if input.ID != nil && *input.ID != id {
		return nil, domainerrors.ErrIDMismatch
	}

	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	result, err := s.GetResult(ctx, id)
	if err != nil {
		return nil, err
	}

	result.AssessmentID = input.AssessmentID
	result.UserID = input.UserID
	result.Score = input.Score
	if input.AttemptDate != nil {
		result.AttemptDate = input.AttemptDate.UTC()
	}
	result.Version = expectedVersion(input.Version, result.Version)

	if err := s.resultRepo.Update(ctx, result); err != nil {
		return nil, translateRepoError(err, repository.ErrResultNotFound, domainerrors.ErrResultNotFound, "failed to update result")
	}

	return result, nil
}

func (s *resultService) DeleteResult(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.resultRepo.DeleteByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return errors.Wrap(err, "failed to delete result")
	}

	if deleted == 0 {
		return domainerrors.ErrResultNotFound
	}

	return nil
}

// validate checks the score and that the references, when given, exist.
func (s *resultService) validate(ctx context.Context, input *usecase.ResultInput) error {
	if input.Score < 0 {
		return domainerrors.ErrValidationFailed.WithMessage("Score must not be negative")
	}

	if input.AssessmentID != nil {
		if _, err := s.assessmentRepo.FindByID(ctx, *input.AssessmentID); err != nil {
			if errors.Is(err, repository.ErrAssessmentNotFound) {
				return domainerrors.ErrInvalidReference.WithMessage("Invalid assessment ID.")
			}

			return errors.Wrap(err, "failed to find assessment")
		}
	}

	if input.UserID != nil {
		if _, err := s.userRepo.FindByID(ctx, *input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidReference.WithMessage("Invalid user ID.")
			}

			return errors.Wrap(err, "failed to find user")
		}
	}

	return nil
}

func (s *resultService) attemptDate(requested *time.Time) time.Time {
	if requested != nil && !requested.IsZero() {
		return requested.UTC()
	}

	return s.now().UTC()
}
