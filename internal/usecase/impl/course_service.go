package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	"edusync/internal/domain/service"
	"edusync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type courseService struct {
	txManager     repository.TransactionManager
	courseRepo    repository.CourseRepository
	userRepo      repository.UserRepository
	storage       service.BlobStorage
	qrcodeService service.QRCodeService
	events        *EventDispatcher
	logger        *slog.Logger
}

// CourseServiceParams holds dependencies for CourseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CourseRepo    repository.CourseRepository
	UserRepo      repository.UserRepository
	Storage       service.BlobStorage
	QRCodeService service.QRCodeService
	Events        *EventDispatcher
	Logger        *slog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		txManager:     params.TxManager,
		courseRepo:    params.CourseRepo,
		userRepo:      params.UserRepo,
		storage:       params.Storage,
		qrcodeService: params.QRCodeService,
		events:        params.Events,
		logger:        params.Logger,
	}
}

func (s *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *courseService) ListCourses(ctx context.Context, instructorID *uuid.UUID) ([]*entity.Course, error) {
	courses, err := s.courseRepo.List(ctx, repository.CourseFilter{InstructorID: instructorID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, repository.ErrCourseNotFound, domainerrors.ErrCourseNotFound, "failed to find course")
	}

	return course, nil
}

func (s *courseService) ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]*entity.Course, error) {
	courses, err := s.ListCourses(ctx, &instructorID)
	if err != nil {
		return nil, err
	}

	if len(courses) == 0 {
		return nil, domainerrors.ErrCourseNotFound.WithMessage("No courses found for this instructor.")
	}

	return courses, nil
}

// CreateCourse stores a course owned by an instructor, uploading the optional
// media first so that a failed upload leaves no row behind.
func (s *courseService) CreateCourse(ctx context.Context, actor *usecase.Actor, input *usecase.CreateCourseInput) (*entity.Course, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Title is required")
	}

	caller, err := resolveCaller(ctx, s.userRepo, actor)
	if err != nil {
		return nil, err
	}

	instructorID := caller.ID
	if input.InstructorID != nil {
		instructorID = *input.InstructorID
	}
	if err := s.checkInstructor(ctx, instructorID); err != nil {
		return nil, err
	}

	course := &entity.Course{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		InstructorID: &instructorID,
	}

	if input.Media != nil {
		if course.MediaURL, err = s.uploadMedia(ctx, course.ID, input.Media); err != nil {
			return nil, err
		}
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.deleteMedia(ctx, course.MediaURL)

		return nil, errors.Wrap(err, "failed to create course")
	}

	s.events.Dispatch(ctx, entity.EventCourseCreated, &courseCreatedPayload{
		CourseID:     course.ID,
		Title:        course.Title,
		InstructorID: course.InstructorID,
		MediaURL:     course.MediaURL,
	})

	s.log(ctx).Info("Course created", slog.Any("courseID", course.ID), slog.Any("instructorID", instructorID))

	return course, nil
}

// UpdateCourse overwrites the course fields. A new media file replaces the
// old one, which is removed only after the row points at the new file.
func (s *courseService) UpdateCourse(ctx context.Context, actor *usecase.Actor, input *usecase.UpdateCourseInput) (*entity.Course, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Title is required")
	}

	course, err := s.GetCourse(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, actor, course); err != nil {
		return nil, err
	}

	if input.InstructorID != nil {
		if err := s.checkInstructor(ctx, *input.InstructorID); err != nil {
			return nil, err
		}
		course.InstructorID = input.InstructorID
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Version = expectedVersion(input.Version, course.Version)

	oldMediaURL := course.MediaURL
	if input.Media != nil {
		if course.MediaURL, err = s.uploadMedia(ctx, course.ID, input.Media); err != nil {
			return nil, err
		}
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if course.MediaURL != oldMediaURL {
			s.deleteMedia(ctx, course.MediaURL)
		}

		return nil, translateRepoError(err, repository.ErrCourseNotFound, domainerrors.ErrCourseNotFound, "failed to update course")
	}

	if course.MediaURL != oldMediaURL {
		s.deleteMedia(ctx, oldMediaURL)
	}

	return course, nil
}

// DeleteCourse removes the course tree in one transaction and then the media.
func (s *courseService) DeleteCourse(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*entity.DeletionReport, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwner(ctx, actor, course); err != nil {
		return nil, err
	}

	var report *entity.DeletionReport
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var cascadeErr error
		report, cascadeErr = deleteCascade(ctx, repoFactory, entity.DeletionRootCourse, id)

		return cascadeErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute course deletion transaction")
	}

	s.deleteMedia(ctx, report.MediaURL)

	s.events.Dispatch(ctx, entity.EventCourseDeleted, &courseDeletedPayload{
		CourseID:    id,
		Assessments: report.Assessments,
		Results:     report.Results,
	})

	s.log(ctx).Info("Course deleted",
		slog.Any("courseID", id),
		slog.Int64("assessments", report.Assessments),
		slog.Int64("results", report.Results),
	)

	return report, nil
}

func (s *courseService) CourseQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.GetCourse(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateCourseQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate course QR code")
	}

	return png, nil
}

// authorizeOwner lets an instructor manage their own courses and courses
// without an instructor.
func (s *courseService) authorizeOwner(ctx context.Context, actor *usecase.Actor, course *entity.Course) error {
	caller, err := resolveCaller(ctx, s.userRepo, actor)
	if err != nil {
		return err
	}

	if !caller.IsInstructor() || !course.IsOwnedBy(caller.ID) {
		s.log(ctx).Warn("Course access denied", slog.Any("courseID", course.ID), slog.Any("userID", caller.ID))

		return domainerrors.ErrForbidden
	}

	return nil
}

func (s *courseService) checkInstructor(ctx context.Context, instructorID uuid.UUID) error {
	instructor, err := s.userRepo.FindByID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidReference.WithMessage("Invalid instructor ID.")
		}

		return errors.Wrap(err, "failed to find instructor")
	}

	if !instructor.IsInstructor() {
		return domainerrors.ErrValidationFailed.WithMessage("User is not an instructor.")
	}

	return nil
}

func (s *courseService) uploadMedia(ctx context.Context, courseID uuid.UUID, media *usecase.MediaUpload) (string, error) {
	url, err := s.storage.Upload(ctx, media.Content, mediaKey(courseID, media.Filename), media.ContentType)
	if err != nil {
		s.log(ctx).Error("Failed to upload course media",
			slog.Any("courseID", courseID),
			slog.String("filename", media.Filename),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrMediaUploadFailed.WithDetails(err.Error())
	}

	return url, nil
}

// deleteMedia removes a blob without failing the caller.
func (s *courseService) deleteMedia(ctx context.Context, url string) {
	if url == "" {
		return
	}

	if err := s.storage.Delete(context.WithoutCancel(ctx), url); err != nil {
		s.log(ctx).Warn("Failed to delete course media", slog.String("url", url), slog.Any("error", err))
	}
}

// mediaKey names the blob of an uploaded file. The random part keeps
// re-uploads of the same filename apart.
func mediaKey(courseID uuid.UUID, filename string) string {
	name := path.Base("/" + filename)
	if name == "/" || name == "." {
		name = "file"
	}

	return fmt.Sprintf("%s/%s_%s", courseID, uuid.New(), name)
}
