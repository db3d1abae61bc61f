package postgres

import (
	"context"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	"edusync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courseRepository implements the repository.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// FindByID retrieves a course without its children.
func (repo *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// FindTreeByID retrieves a course with its assessments and their results.
func (repo *courseRepository) FindTreeByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	if err := repo.db.WithContext(ctx).
		Preload("Assessments").
		Preload("Assessments.Results").
		Where("id = ?", id).
		First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to load course tree")
	}

	return toCourseDomain(&courseM), nil
}

// List returns courses matching the filter, newest first.
func (repo *courseRepository) List(ctx context.Context, filter repository.CourseFilter) ([]*entity.Course, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.InstructorID != nil {
		query = query.Where("instructor_id = ?", *filter.InstructorID)
	}

	var courseModels []*model.CourseModel
	if err := query.Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseModels))
	for _, m := range courseModels {
		courses = append(courses, toCourseDomain(m))
	}

	return courses, nil
}

// Create persists a new course.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)
	if courseM.ID == uuid.Nil {
		courseM.ID = uuid.New()
	}
	courseM.Version = 1

	if err := repo.db.WithContext(ctx).Omit("Instructor", "Assessments").Create(courseM).Error; err != nil {
		return mapWriteError(err, "failed to create course", domainerrors.ErrConflict)
	}

	course.ID = courseM.ID
	course.Version = courseM.Version
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Update writes the mutable course fields guarded by the version column.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	columns := map[string]any{
		"title":         course.Title,
		"description":   course.Description,
		"instructor_id": course.InstructorID,
		"media_url":     nullableString(course.MediaURL),
	}

	version, updatedAt, err := updateVersioned(ctx, repo.db, &model.CourseModel{}, course.ID, course.Version, columns, repository.ErrCourseNotFound)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return err
		}

		return mapWriteError(err, "failed to update course", domainerrors.ErrConflict)
	}

	course.Version = version
	course.UpdatedAt = updatedAt

	return nil
}

// DeleteByIDs removes the given courses.
func (repo *courseRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return deleteByIDs(ctx, repo.db, &model.CourseModel{}, ids)
}

// CountByInstructor counts the courses owned by a user.
func (repo *courseRepository) CountByInstructor(ctx context.Context, instructorID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CourseModel{}).
		Where("instructor_id = ?", instructorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count courses by instructor")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	course := &entity.Course{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		InstructorID: data.InstructorID,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.MediaURL != nil {
		course.MediaURL = *data.MediaURL
	}

	if len(data.Assessments) > 0 {
		course.Assessments = make([]*entity.Assessment, 0, len(data.Assessments))
		for _, a := range data.Assessments {
			course.Assessments = append(course.Assessments, toAssessmentDomain(a))
		}
	}

	return course
}

func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	return &model.CourseModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		InstructorID: data.InstructorID,
		MediaURL:     nullableString(data.MediaURL),
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
