package usecase

import (
	"context"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// AssessmentInput carries the fields of an assessment write. ID is optional
// on create and Version is optional on update.
type AssessmentInput struct {
	ID        *uuid.UUID
	CourseID  uuid.UUID
	Title     string
	Questions string
	MaxScore  int
	Version   *int
}

// AssessmentUsecase defines assessment management operations.
type AssessmentUsecase interface {
	ListAssessments(ctx context.Context) ([]*entity.Assessment, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (*entity.Assessment, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Assessment, error)
	CreateAssessment(ctx context.Context, input *AssessmentInput) (*entity.Assessment, error)
	UpdateAssessment(ctx context.Context, id uuid.UUID, input *AssessmentInput) (*entity.Assessment, error)

	// DeleteAssessment removes the assessment together with its results.
	DeleteAssessment(ctx context.Context, id uuid.UUID) (*entity.DeletionReport, error)
}
