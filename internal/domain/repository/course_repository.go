package repository

import (
	"context"
	"errors"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCourseNotFound is returned when a course does not exist.
var ErrCourseNotFound = errors.New("course not found")

// CourseFilter narrows course listings. Nil fields are ignored.
type CourseFilter struct {
	InstructorID *uuid.UUID
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// FindTreeByID loads the course with its assessments and their results.
	FindTreeByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	List(ctx context.Context, filter CourseFilter) ([]*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error

	// DeleteByIDs removes the given courses and returns the number of rows deleted.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	CountByInstructor(ctx context.Context, instructorID uuid.UUID) (int64, error)
}
