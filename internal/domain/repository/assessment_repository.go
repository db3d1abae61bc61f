package repository

import (
	"context"
	"errors"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAssessmentNotFound is returned when an assessment does not exist.
var ErrAssessmentNotFound = errors.New("assessment not found")

// AssessmentRepository defines persistence operations for assessments.
type AssessmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error)

	// FindTreeByID loads the assessment with every result referencing it.
	FindTreeByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error)

	List(ctx context.Context) ([]*entity.Assessment, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Assessment, error)

	// Create persists a new assessment. A taken id yields domainerrors.ErrConflict.
	Create(ctx context.Context, assessment *entity.Assessment) error
	Update(ctx context.Context, assessment *entity.Assessment) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
