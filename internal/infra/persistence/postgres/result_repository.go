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

// resultRepository implements the repository.ResultRepository interface.
type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository is the constructor for resultRepository.
func NewResultRepository(db *gorm.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

// FindByID retrieves a single result.
func (repo *resultRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Result, error) {
	var resultM model.ResultModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&resultM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResultNotFound
		}

		return nil, errors.Wrap(err, "failed to find result by id")
	}

	return toResultDomain(&resultM), nil
}

// List returns every result, newest attempt first.
func (repo *resultRepository) List(ctx context.Context) ([]*entity.Result, error) {
	var resultModels []*model.ResultModel
	if err := repo.db.WithContext(ctx).Order("attempt_date DESC").Find(&resultModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list results")
	}

	results := make([]*entity.Result, 0, len(resultModels))
	for _, m := range resultModels {
		results = append(results, toResultDomain(m))
	}

	return results, nil
}

// ListByUser returns the projection of a user's attempts, newest first.
func (repo *resultRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserResult, error) {
	var resultModels []*model.ResultModel
	if err := repo.db.WithContext(ctx).
		Select("id", "assessment_id", "score", "attempt_date").
		Where("user_id = ?", userID).
		Order("attempt_date DESC").
		Find(&resultModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list results by user")
	}

	projections := make([]*entity.UserResult, 0, len(resultModels))
	for _, m := range resultModels {
		projections = append(projections, &entity.UserResult{
			ResultID:     m.ID,
			AssessmentID: m.AssessmentID,
			Score:        m.Score,
			AttemptDate:  m.AttemptDate,
		})
	}

	return projections, nil
}

// ListForInstructorByCourse joins each result of the course with its student and assessment.
func (repo *resultRepository) ListForInstructorByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.InstructorResult, error) {
	var rows []*model.InstructorResultRow
	if err := repo.db.WithContext(ctx).
		Table("results AS r").
		Select(`r.id AS result_id, r.score, r.attempt_date,
			r.user_id AS student_id, u.name AS student_name,
			r.assessment_id, a.title AS assessment_title, a.max_score`).
		Joins("JOIN assessments AS a ON a.id = r.assessment_id").
		Joins("LEFT JOIN users AS u ON u.id = r.user_id").
		Where("a.course_id = ?", courseID).
		Order("r.attempt_date DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list course results for instructor")
	}

	views := make([]*entity.InstructorResult, 0, len(rows))
	for _, row := range rows {
		views = append(views, toInstructorResult(row))
	}

	return views, nil
}

// Create persists a new result. Client-supplied ids that already exist are a conflict.
func (repo *resultRepository) Create(ctx context.Context, result *entity.Result) error {
	resultM := fromResultDomain(result)
	if resultM.ID == uuid.Nil {
		resultM.ID = uuid.New()
	}
	resultM.Version = 1

	if err := repo.db.WithContext(ctx).Omit("Assessment", "User").Create(resultM).Error; err != nil {
		return mapWriteError(err, "failed to create result", domainerrors.ErrConflict)
	}

	result.ID = resultM.ID
	result.Version = resultM.Version
	result.CreatedAt = resultM.CreatedAt
	result.UpdatedAt = resultM.UpdatedAt

	return nil
}

// Update writes the mutable result fields guarded by the version column.
func (repo *resultRepository) Update(ctx context.Context, result *entity.Result) error {
	columns := map[string]any{
		"assessment_id": result.AssessmentID,
		"user_id":       result.UserID,
		"score":         result.Score,
		"attempt_date":  result.AttemptDate,
	}

	version, updatedAt, err := updateVersioned(ctx, repo.db, &model.ResultModel{}, result.ID, result.Version, columns, repository.ErrResultNotFound)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			return err
		}

		return mapWriteError(err, "failed to update result", domainerrors.ErrConflict)
	}

	result.Version = version
	result.UpdatedAt = updatedAt

	return nil
}

// DeleteByIDs removes the given results.
func (repo *resultRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return deleteByIDs(ctx, repo.db, &model.ResultModel{}, ids)
}

// CountByUser counts the results recorded for a user.
func (repo *resultRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ResultModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count results by user")
	}

	return count, nil
}

// --- Mapper Functions ---

func toResultDomain(data *model.ResultModel) *entity.Result {
	if data == nil {
		return nil
	}

	return &entity.Result{
		ID:           data.ID,
		AssessmentID: data.AssessmentID,
		UserID:       data.UserID,
		Score:        data.Score,
		AttemptDate:  data.AttemptDate,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromResultDomain(data *entity.Result) *model.ResultModel {
	if data == nil {
		return nil
	}

	return &model.ResultModel{
		ID:           data.ID,
		AssessmentID: data.AssessmentID,
		UserID:       data.UserID,
		Score:        data.Score,
		AttemptDate:  data.AttemptDate,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toInstructorResult fills in placeholder names for dangling references.
func toInstructorResult(row *model.InstructorResultRow) *entity.InstructorResult {
	view := &entity.InstructorResult{
		ResultID:        row.ResultID,
		Score:           row.Score,
		AttemptDate:     row.AttemptDate,
		StudentID:       row.StudentID,
		StudentName:     entity.UnknownStudentName,
		AssessmentID:    row.AssessmentID,
		AssessmentTitle: entity.UnknownAssessmentTitle,
	}
	if row.StudentName != nil && *row.StudentName != "" {
		view.StudentName = *row.StudentName
	}
	if row.AssessmentTitle != nil && *row.AssessmentTitle != "" {
		view.AssessmentTitle = *row.AssessmentTitle
	}
	if row.MaxScore != nil {
		view.MaxScore = *row.MaxScore
	}

	return view
}
