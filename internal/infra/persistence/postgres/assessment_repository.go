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

// assessmentRepository implements the repository.AssessmentRepository interface.
type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository is the constructor for assessmentRepository.
func NewAssessmentRepository(db *gorm.DB) repository.AssessmentRepository {
	return &assessmentRepository{db: db}
}

// FindByID retrieves an assessment without its results.
func (repo *assessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error) {
	var assessmentM model.AssessmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&assessmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssessmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assessment by id")
	}

	return toAssessmentDomain(&assessmentM), nil
}

// FindTreeByID retrieves an assessment together with every result referencing it.
func (repo *assessmentRepository) FindTreeByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error) {
	var assessmentM model.AssessmentModel
	if err := repo.db.WithContext(ctx).
		Preload("Results").
		Where("id = ?", id).
		First(&assessmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssessmentNotFound
		}

		return nil, errors.Wrap(err, "failed to load assessment tree")
	}

	return toAssessmentDomain(&assessmentM), nil
}

// List returns every assessment.
func (repo *assessmentRepository) List(ctx context.Context) ([]*entity.Assessment, error) {
	return repo.find(repo.db.WithContext(ctx))
}

// ListByCourse returns the assessments of one course.
func (repo *assessmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Assessment, error) {
	return repo.find(repo.db.WithContext(ctx).Where("course_id = ?", courseID))
}

func (repo *assessmentRepository) find(query *gorm.DB) ([]*entity.Assessment, error) {
	var assessmentModels []*model.AssessmentModel
	if err := query.Order("created_at ASC").Find(&assessmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assessments")
	}

	assessments := make([]*entity.Assessment, 0, len(assessmentModels))
	for _, m := range assessmentModels {
		assessments = append(assessments, toAssessmentDomain(m))
	}

	return assessments, nil
}

// Create persists a new assessment. Client-supplied ids that already exist are a conflict.
func (repo *assessmentRepository) Create(ctx context.Context, assessment *entity.Assessment) error {
	assessmentM := fromAssessmentDomain(assessment)
	if assessmentM.ID == uuid.Nil {
		assessmentM.ID = uuid.New()
	}
	assessmentM.Version = 1

	if err := repo.db.WithContext(ctx).Omit("Course", "Results").Create(assessmentM).Error; err != nil {
		return mapWriteError(err, "failed to create assessment", domainerrors.ErrConflict)
	}

	assessment.ID = assessmentM.ID
	assessment.Version = assessmentM.Version
	assessment.CreatedAt = assessmentM.CreatedAt
	assessment.UpdatedAt = assessmentM.UpdatedAt

	return nil
}

// Update writes the mutable assessment fields guarded by the version column.
func (repo *assessmentRepository) Update(ctx context.Context, assessment *entity.Assessment) error {
	columns := map[string]any{
		"course_id": assessment.CourseID,
		"title":     assessment.Title,
		"questions": assessment.Questions,
		"max_score": assessment.MaxScore,
	}

	version, updatedAt, err := updateVersioned(ctx, repo.db, &model.AssessmentModel{}, assessment.ID, assessment.Version, columns, repository.ErrAssessmentNotFound)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return err
		}

		return mapWriteError(err, "failed to update assessment", domainerrors.ErrConflict)
	}

	assessment.Version = version
	assessment.UpdatedAt = updatedAt

	return nil
}

// DeleteByIDs removes the given assessments.
func (repo *assessmentRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return deleteByIDs(ctx, repo.db, &model.AssessmentModel{}, ids)
}

// --- Mapper Functions ---

func toAssessmentDomain(data *model.AssessmentModel) *entity.Assessment {
	if data == nil {
		return nil
	}

	assessment := &entity.Assessment{
		ID:        data.ID,
		CourseID:  data.CourseID,
		Title:     data.Title,
		Questions: data.Questions,
		MaxScore:  data.MaxScore,
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.Results) > 0 {
		assessment.Results = make([]*entity.Result, 0, len(data.Results))
		for _, r := range data.Results {
			assessment.Results = append(assessment.Results, toResultDomain(r))
		}
	}

	return assessment
}

func fromAssessmentDomain(data *entity.Assessment) *model.AssessmentModel {
	if data == nil {
		return nil
	}

	return &model.AssessmentModel{
		ID:        data.ID,
		CourseID:  data.CourseID,
		Title:     data.Title,
		Questions: data.Questions,
		MaxScore:  data.MaxScore,
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
