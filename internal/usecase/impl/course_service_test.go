package impl

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"testing"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	mockRepo "edusync/internal/mocks/repository"
	mockSvc "edusync/internal/mocks/service"
	"edusync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type courseServiceFixtures struct {
	service    usecase.CourseUsecase
	txManager  *mockRepo.MockTransactionManager
	courseRepo *mockRepo.MockCourseRepository
	userRepo   *mockRepo.MockUserRepository
	storage    *mockSvc.MockBlobStorage
	qrcode     *mockSvc.MockQRCodeService
	publisher  *mockSvc.MockEventPublisher
	events     *EventDispatcher
}

func createTestCourseService(t *testing.T) courseServiceFixtures {
	fx := courseServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		courseRepo: mockRepo.NewMockCourseRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		storage:    mockSvc.NewMockBlobStorage(t),
		qrcode:     mockSvc.NewMockQRCodeService(t),
	}
	fx.events, fx.publisher = newTestDispatcher(t)

	fx.service = NewCourseService(CourseServiceParams{
		TxManager:     fx.txManager,
		CourseRepo:    fx.courseRepo,
		UserRepo:      fx.userRepo,
		Storage:       fx.storage,
		QRCodeService: fx.qrcode,
		Events:        fx.events,
		Logger:        newDiscardLogger(),
	})

	return fx
}

func actorOf(user *entity.User) *usecase.Actor {
	return &usecase.Actor{Email: user.Email, Role: user.Role}
}

func ownedCourse(owner *entity.User) *entity.Course {
	return &entity.Course{
		ID:           uuid.New(),
		Title:        "Distributed Systems",
		InstructorID: &owner.ID,
		MediaURL:     "https://cdn.example.com/media/old.mp4",
		Version:      3,
	}
}

var mediaKeyPattern = regexp.MustCompile(`^[0-9a-f-]{36}/[0-9a-f-]{36}_syllabus\.pdf$`)

func TestCourseService_CreateCourse_DefaultsInstructorAndUploadsMedia(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	caller := newInstructor()

	fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
	fx.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(caller, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.Anything, mock.MatchedBy(mediaKeyPattern.MatchString), "application/pdf").
		Return("https://cdn.example.com/media/key", nil)
	fx.courseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Course")).
		Run(func(_ context.Context, course *entity.Course) {
			require.NotNil(t, course.InstructorID)
			assert.Equal(t, caller.ID, *course.InstructorID)
			assert.Equal(t, "https://cdn.example.com/media/key", course.MediaURL)
		}).
		Return(nil)
	expectEvent(fx.publisher, entity.EventCourseCreated)

	course, err := fx.service.CreateCourse(ctx, actorOf(caller), &usecase.CreateCourseInput{
		Title:       "Distributed Systems",
		Description: "Consensus and friends",
		Media: &usecase.MediaUpload{
			Filename:    "../../syllabus.pdf",
			ContentType: "application/pdf",
			Content:     bytes.NewReader([]byte("%PDF")),
		},
	})
	waitEvents(t, fx.events)

	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", course.Title)
	assert.True(t, course.HasMedia())
}

func TestCourseService_CreateCourse_UploadFailureWritesNothing(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	caller := newInstructor()

	fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
	fx.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(caller, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	course, err := fx.service.CreateCourse(ctx, actorOf(caller), &usecase.CreateCourseInput{
		Title: "Distributed Systems",
		Media: &usecase.MediaUpload{Filename: "a.mp4", Content: bytes.NewReader(nil)},
	})

	assert.Nil(t, course)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaUploadFailed))
}

func TestCourseService_CreateCourse_InstructorChecks(t *testing.T) {
	ctx := context.Background()
	caller := newInstructor()

	t.Run("unknown instructor", func(t *testing.T) {
		fx := createTestCourseService(t)
		otherID := uuid.New()
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
		fx.userRepo.EXPECT().FindByID(ctx, otherID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CreateCourse(ctx, actorOf(caller), &usecase.CreateCourseInput{Title: "X", InstructorID: &otherID})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
		assert.Equal(t, "Invalid instructor ID.", appErrorMessage(t, err))
	})

	t.Run("student as instructor", func(t *testing.T) {
		fx := createTestCourseService(t)
		student := newStudent()
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
		fx.userRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)

		_, err := fx.service.CreateCourse(ctx, actorOf(caller), &usecase.CreateCourseInput{Title: "X", InstructorID: &student.ID})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Equal(t, "User is not an instructor.", appErrorMessage(t, err))
	})

	t.Run("unknown caller", func(t *testing.T) {
		fx := createTestCourseService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CreateCourse(ctx, actorOf(caller), &usecase.CreateCourseInput{Title: "X"})

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestCourseService_CreateCourse_RowFailureRemovesUpload(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	caller := newInstructor()

	fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
	fx.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(caller, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn.example.com/media/new", nil)
	fx.courseRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(mock.Anything, "https://cdn.example.com/media/new").Return(nil)

	_, err := fx.service.CreateCourse(ctx, actorOf(caller), &usecase.CreateCourseInput{
		Title: "X",
		Media: &usecase.MediaUpload{Filename: "a.mp4", Content: bytes.NewReader(nil)},
	})

	assert.ErrorContains(t, err, "failed to create course")
}

func TestCourseService_UpdateCourse_ForbiddenForOtherInstructor(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	owner := newInstructor()
	intruder := newInstructor()
	intruder.Email = "intruder@example.com"
	course := ownedCourse(owner)

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, intruder.Email).Return(intruder, nil)

	_, err := fx.service.UpdateCourse(ctx, actorOf(intruder), &usecase.UpdateCourseInput{ID: course.ID, Title: "Hijacked"})

	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestCourseService_UpdateCourse_UnownedCourseIsOpen(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	caller := newInstructor()
	course := &entity.Course{ID: uuid.New(), Title: "Orphan", Version: 1}

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
	fx.courseRepo.EXPECT().Update(ctx, course).Return(nil)

	updated, err := fx.service.UpdateCourse(ctx, actorOf(caller), &usecase.UpdateCourseInput{ID: course.ID, Title: "Adopted"})

	require.NoError(t, err)
	assert.Equal(t, "Adopted", updated.Title)
}

func TestCourseService_UpdateCourse_ReplacesMedia(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	owner := newInstructor()
	course := ownedCourse(owner)
	oldURL := course.MediaURL
	version := 3

	var calls []string
	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, "video/mp4").
		Run(func(context.Context, io.Reader, string, string) { calls = append(calls, "upload") }).
		Return("https://cdn.example.com/media/new.mp4", nil)
	fx.courseRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Course")).
		Run(func(_ context.Context, c *entity.Course) {
			calls = append(calls, "update")
			assert.Equal(t, 3, c.Version)
			assert.Equal(t, "https://cdn.example.com/media/new.mp4", c.MediaURL)
		}).
		Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, oldURL).
		Run(func(context.Context, string) { calls = append(calls, "delete-old") }).
		Return(errors.New("blob already gone"))

	updated, err := fx.service.UpdateCourse(ctx, actorOf(owner), &usecase.UpdateCourseInput{
		ID:      course.ID,
		Title:   "Distributed Systems II",
		Version: &version,
		Media:   &usecase.MediaUpload{Filename: "new.mp4", ContentType: "video/mp4", Content: bytes.NewReader(nil)},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"upload", "update", "delete-old"}, calls)
	assert.Equal(t, "https://cdn.example.com/media/new.mp4", updated.MediaURL)
}

func TestCourseService_UpdateCourse_StaleVersion(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	owner := newInstructor()
	course := ownedCourse(owner)
	stale := 1

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
	fx.courseRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrConcurrentUpdate)

	_, err := fx.service.UpdateCourse(ctx, actorOf(owner), &usecase.UpdateCourseInput{ID: course.ID, Title: "T", Version: &stale})

	assert.Equal(t, domainerrors.ErrConcurrentUpdate, err)
}

func TestCourseService_DeleteCourse_CascadesThenRemovesMedia(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	owner := newInstructor()
	course := courseTree()
	course.InstructorID = &owner.ID

	cascade := createCascadeFixtures(t)
	cascade.courseRepo.EXPECT().FindTreeByID(ctx, course.ID).Return(course, nil)
	cascade.resultRepo.EXPECT().DeleteByIDs(ctx, mock.Anything).Return(4, nil)
	cascade.assessmentRepo.EXPECT().DeleteByIDs(ctx, mock.Anything).Return(2, nil)
	cascade.courseRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{course.ID}).Return(1, nil)

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
	runInTx(fx.txManager, cascade.factory)
	fx.storage.EXPECT().Delete(mock.Anything, course.MediaURL).Return(errors.New("storage timeout"))
	expectEvent(fx.publisher, entity.EventCourseDeleted)

	report, err := fx.service.DeleteCourse(ctx, actorOf(owner), course.ID)
	waitEvents(t, fx.events)

	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Courses)
	assert.Equal(t, int64(2), report.Assessments)
	assert.Equal(t, int64(4), report.Results)
}

func TestCourseService_DeleteCourse_NotFound(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.courseRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCourseNotFound)

	_, err := fx.service.DeleteCourse(ctx, actorOf(newInstructor()), id)

	assert.Equal(t, domainerrors.ErrCourseNotFound, err)
}

func TestCourseService_DeleteCourse_RollbackKeepsMedia(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	owner := newInstructor()
	course := ownedCourse(owner)

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(txFuncType)).
		Return(errors.New("serialization failure"))

	_, err := fx.service.DeleteCourse(ctx, actorOf(owner), course.ID)

	assert.ErrorContains(t, err, "failed to execute course deletion transaction")
}

func TestCourseService_ListByInstructor_EmptyIsNotFound(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	instructorID := uuid.New()

	fx.courseRepo.EXPECT().
		List(ctx, repository.CourseFilter{InstructorID: &instructorID}).
		Return([]*entity.Course{}, nil)

	_, err := fx.service.ListByInstructor(ctx, instructorID)

	assert.True(t, errors.Is(err, domainerrors.ErrCourseNotFound))
	assert.Equal(t, "No courses found for this instructor.", appErrorMessage(t, err))
}

func TestCourseService_CourseQRCode(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	course := ownedCourse(newInstructor())

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.qrcode.EXPECT().GenerateCourseQR(course.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.CourseQRCode(ctx, course.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestMediaKey(t *testing.T) {
	courseID := uuid.New()

	assert.Regexp(t, "^"+courseID.String()+"/[0-9a-f-]{36}_notes.txt$", mediaKey(courseID, "notes.txt"))
	assert.Regexp(t, "^"+courseID.String()+"/[0-9a-f-]{36}_passwd$", mediaKey(courseID, "../../etc/passwd"))
	assert.Regexp(t, "^"+courseID.String()+"/[0-9a-f-]{36}_file$", mediaKey(courseID, ""))
}
