package usecase

import (
	"context"
	"time"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// ResultInput carries the fields of a result write. A nil AttemptDate means now.
type ResultInput struct {
	ID           *uuid.UUID
	AssessmentID *uuid.UUID
	UserID       *uuid.UUID
	Score        int
	AttemptDate  *time.Time
	Version      *int
}

// ResultUsecase defines result management operations.
type ResultUsecase interface {
	ListResults(ctx context.Context) ([]*entity.Result, error)
	GetResult(ctx context.Context, id uuid.UUID) (*entity.Result, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserResult, error)
	ListForInstructorByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.InstructorResult, error)
	CreateResult(ctx context.Context, input *ResultInput) (*entity.Result, error)
	UpdateResult(ctx context.Context, id uuid.UUID, input *ResultInput) (*entity.Result, error)
	DeleteResult(ctx context.Context, id uuid.UUID) error
}
