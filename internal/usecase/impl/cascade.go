package impl

import (
	"context"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deleteCascade removes root and everything below it using repositories bound
// to one transaction: results first, then assessments, then the course.
// Deleting the media of a course is left to the caller, after commit.
func deleteCascade(ctx context.Context, factory repository.RepositoryFactory, root entity.DeletionRoot, id uuid.UUID) (*entity.DeletionReport, error) {
	report := &entity.DeletionReport{Root: root}

	var assessments []*entity.Assessment
	switch root {
	case entity.DeletionRootCourse:
		course, err := factory.CourseRepo().FindTreeByID(ctx, id)
		if err != nil {
			return nil, translateRepoError(err, repository.ErrCourseNotFound, domainerrors.ErrCourseNotFound, "failed to load course tree")
		}
		assessments = course.Assessments
		report.MediaURL = course.MediaURL

	case entity.DeletionRootAssessment:
		assessment, err := factory.AssessmentRepo().FindTreeByID(ctx, id)
		if err != nil {
			return nil, translateRepoError(err, repository.ErrAssessmentNotFound, domainerrors.ErrAssessmentNotFound, "failed to load assessment tree")
		}
		assessments = []*entity.Assessment{assessment}

	default:
		return nil, errors.Errorf("unknown deletion root: %s", root)
	}

	assessmentIDs := make([]uuid.UUID, 0, len(assessments))
	var resultIDs []uuid.UUID
	for _, assessment := range assessments {
		assessmentIDs = append(assessmentIDs, assessment.ID)
		for _, result := range assessment.Results {
			resultIDs = append(resultIDs, result.ID)
		}
	}

	var err error
	if report.Results, err = factory.ResultRepo().DeleteByIDs(ctx, resultIDs); err != nil {
		return nil, errors.Wrap(err, "failed to delete results")
	}

	if report.Assessments, err = factory.AssessmentRepo().DeleteByIDs(ctx, assessmentIDs); err != nil {
		return nil, errors.Wrap(err, "failed to delete assessments")
	}

	if root == entity.DeletionRootCourse {
		if report.Courses, err = factory.CourseRepo().DeleteByIDs(ctx, []uuid.UUID{id}); err != nil {
			return nil, errors.Wrap(err, "failed to delete course")
		}
	}

	return report, nil
}
