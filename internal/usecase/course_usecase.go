package usecase

import (
	"context"
	"io"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// MediaUpload is a file attached to a course write.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateCourseInput defines the data required to create a course. A nil
// InstructorID makes the caller the instructor.
type CreateCourseInput struct {
	Title        string
	Description  string
	InstructorID *uuid.UUID
	Media        *MediaUpload
}

// UpdateCourseInput carries the course fields to overwrite. A nil
// InstructorID keeps the current instructor and a nil Media keeps the current file.
type UpdateCourseInput struct {
	ID           uuid.UUID
	Title        string
	Description  string
	InstructorID *uuid.UUID
	Media        *MediaUpload
	Version      *int
}

// CourseUsecase defines course management operations.
type CourseUsecase interface {
	ListCourses(ctx context.Context, instructorID *uuid.UUID) ([]*entity.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// ListByInstructor fails with not-found when the instructor has no courses.
	ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*entity.Course, error)

	CreateCourse(ctx context.Context, actor *Actor, input *CreateCourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, actor *Actor, input *UpdateCourseInput) (*entity.Course, error)

	// DeleteCourse removes the course with its assessments, their results and
	// the uploaded media.
	DeleteCourse(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.DeletionReport, error)

	// CourseQRCode renders a PNG QR code linking to the course.
	CourseQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
