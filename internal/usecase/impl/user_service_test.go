package impl

import (
	"context"
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

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}

	fx.service = NewUserService(UserServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Hasher:    fx.hasher,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestUserService_CreateUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	salt := []byte("fedcba9876543210")
	admin := newInstructor()

	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("Password123").Return(nil)
	fx.hasher.EXPECT().Hash("Password123").Return("ZGlnZXN0", salt, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "ZGlnZXN0", user.PasswordHash)
			assert.Equal(t, salt, user.PasswordSalt)
			assert.Equal(t, entity.RoleInstructor, user.Role)
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, actorOf(admin), &usecase.CreateUserInput{
		Name:     "Barbara Liskov",
		Email:    "barbara@example.com",
		Password: "Password123",
		Role:     "Instructor",
	})

	require.NoError(t, err)
	assert.Equal(t, "barbara@example.com", user.Email)
}

func TestUserService_CreateUser_StudentForbidden(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	student := newStudent()
	fx.userRepo.EXPECT().FindByEmail(ctx, student.Email).Return(student, nil)

	_, err := fx.service.CreateUser(ctx, actorOf(student), &usecase.CreateUserInput{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "Password123",
		Role:     "Instructor",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_CreateUser_UnknownCaller(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateUser(ctx, &usecase.Actor{Email: "ghost@example.com", Role: entity.RoleInstructor}, &usecase.CreateUserInput{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "Password123",
		Role:     "Student",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	admin := newInstructor()
	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)

	_, err := fx.service.CreateUser(ctx, actorOf(admin), &usecase.CreateUserInput{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "Password123",
		Role:     "Admin",
	})

	assert.Equal(t, domainerrors.ErrInvalidRole, err)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	admin := newInstructor()

	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("ZGlnZXN0", []byte("salt"), nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user"))

	_, err := fx.service.CreateUser(ctx, actorOf(admin), &usecase.CreateUserInput{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "Password123",
		Role:     "Student",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("instructor overwrites profile fields", func(t *testing.T) {
		fx := createTestUserService(t)
		admin := newInstructor()
		stored := newStudent()
		stored.PasswordHash = "unchanged"
		fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
		fx.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		fx.userRepo.EXPECT().Update(ctx, stored).Return(nil)

		updated, err := fx.service.UpdateUser(ctx, actorOf(admin), &usecase.UpdateUserInput{
			ID:    stored.ID,
			Name:  "Alan M. Turing",
			Email: "turing@example.com",
			Role:  "Instructor",
		})

		require.NoError(t, err)
		assert.Equal(t, "Alan M. Turing", updated.Name)
		assert.Equal(t, entity.RoleInstructor, updated.Role)
		assert.Equal(t, "unchanged", updated.PasswordHash)
	})

	t.Run("student edits own name", func(t *testing.T) {
		fx := createTestUserService(t)
		caller := newStudent()
		stored := *caller
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
		fx.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(&stored, nil)
		fx.userRepo.EXPECT().Update(ctx, &stored).Return(nil)

		updated, err := fx.service.UpdateUser(ctx, actorOf(caller), &usecase.UpdateUserInput{
			ID:    caller.ID,
			Name:  "Alan M. Turing",
			Email: caller.Email,
			Role:  "Student",
		})

		require.NoError(t, err)
		assert.Equal(t, "Alan M. Turing", updated.Name)
		assert.Equal(t, entity.RoleStudent, updated.Role)
	})

	t.Run("student cannot change own role", func(t *testing.T) {
		fx := createTestUserService(t)
		caller := newStudent()
		stored := *caller
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
		fx.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(&stored, nil)

		_, err := fx.service.UpdateUser(ctx, actorOf(caller), &usecase.UpdateUserInput{
			ID:    caller.ID,
			Name:  caller.Name,
			Email: caller.Email,
			Role:  "Instructor",
		})

		require.True(t, errors.Is(err, domainerrors.ErrForbidden))
		assert.Equal(t, entity.RoleStudent, stored.Role)
	})

	t.Run("student cannot edit another account", func(t *testing.T) {
		fx := createTestUserService(t)
		caller := newStudent()
		other := newStudent()
		other.Email = "ada@example.com"
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
		fx.userRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

		_, err := fx.service.UpdateUser(ctx, actorOf(caller), &usecase.UpdateUserInput{
			ID:    other.ID,
			Name:  "Ada",
			Email: other.Email,
			Role:  "Student",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("token role is not trusted", func(t *testing.T) {
		fx := createTestUserService(t)
		caller := newStudent()
		stored := *caller
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
		fx.userRepo.EXPECT().FindByID(ctx, caller.ID).Return(&stored, nil)

		_, err := fx.service.UpdateUser(ctx, &usecase.Actor{Email: caller.Email, Role: entity.RoleInstructor}, &usecase.UpdateUserInput{
			ID:    caller.ID,
			Name:  caller.Name,
			Email: caller.Email,
			Role:  "Instructor",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestUserService(t)
		admin := newInstructor()
		id := uuid.New()
		fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.UpdateUser(ctx, actorOf(admin), &usecase.UpdateUserInput{ID: id, Name: "N", Email: "e@example.com", Role: "Student"})

		assert.Equal(t, domainerrors.ErrUserNotFound, err)
	})

	t.Run("stale version", func(t *testing.T) {
		fx := createTestUserService(t)
		admin := newInstructor()
		stored := newStudent()
		stale := 0
		fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
		fx.userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		fx.userRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrConcurrentUpdate)

		_, err := fx.service.UpdateUser(ctx, actorOf(admin), &usecase.UpdateUserInput{
			ID: stored.ID, Name: "N", Email: "e@example.com", Role: "Student", Version: &stale,
		})

		assert.Equal(t, domainerrors.ErrConcurrentUpdate, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		courses     int64
		results     int64
		wantErr     error
		wantDeleted bool
	}{
		{name: "no dependents", wantDeleted: true},
		{name: "owns a course", courses: 1, wantErr: domainerrors.ErrUserHasDependents},
		{name: "has results", results: 3, wantErr: domainerrors.ErrUserHasDependents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			admin := newInstructor()
			fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
			cascade := createCascadeFixtures(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			cascade.factory.EXPECT().UserRepo().Return(txUserRepo)
			user := newStudent()

			txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			cascade.courseRepo.EXPECT().CountByInstructor(ctx, user.ID).Return(tt.courses, nil)
			cascade.resultRepo.EXPECT().CountByUser(ctx, user.ID).Return(tt.results, nil)
			if tt.wantDeleted {
				txUserRepo.EXPECT().Delete(ctx, user.ID).Return(nil)
			}
			runInTx(fx.txManager, cascade.factory)

			err := fx.service.DeleteUser(ctx, actorOf(admin), user.ID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	admin := newInstructor()
	fx.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	cascade := createCascadeFixtures(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	cascade.factory.EXPECT().UserRepo().Return(txUserRepo)
	id := uuid.New()

	txUserRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)
	runInTx(fx.txManager, cascade.factory)

	err := fx.service.DeleteUser(ctx, actorOf(admin), id)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DeleteUser_StudentForbidden(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	student := newStudent()
	fx.userRepo.EXPECT().FindByEmail(ctx, student.Email).Return(student, nil)

	err := fx.service.DeleteUser(ctx, actorOf(student), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
