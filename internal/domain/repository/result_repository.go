package repository

import (
	"context"
	"errors"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResultNotFound is returned when a result does not exist.
var ErrResultNotFound = errors.New("result not found")

// ResultRepository defines persistence operations for results.
type ResultRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Result, error)
	List(ctx context.Context) ([]*entity.Result, error)

	// ListByUser returns the projection of every result recorded for a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserResult, error)

	// ListForInstructorByCourse joins results of a course's assessments with
	// student and assessment details, newest attempt first.
	ListForInstructorByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.InstructorResult, error)

	// Create persists a new result. A taken id yields domainerrors.ErrConflict.
	Create(ctx context.Context, result *entity.Result) error
	Update(ctx context.Context, result *entity.Result) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
