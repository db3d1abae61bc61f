package impl

import (
	"context"
	"log/slog"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return user, nil
}

// CreateUser stores an account with a hashed password. Duplicate emails are a conflict.
func (srv *userService) CreateUser(ctx context.Context, actor *usecase.Actor, input *usecase.CreateUserInput) (*entity.User, error) {
	if _, err := srv.requireInstructor(ctx, actor); err != nil {
		return nil, err
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Missing required fields")
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	digest, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: digest,
		PasswordSalt: salt,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

// UpdateUser overwrites name, email and role. Credentials are not touched.
// Non-instructors may only edit their own account and must keep its role.
func (srv *userService) UpdateUser(ctx context.Context, actor *usecase.Actor, input *usecase.UpdateUserInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}
	if input.Name == "" || input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Missing required fields")
	}

	caller, err := resolveCaller(ctx, srv.userRepo, actor)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, translateRepoError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	if !caller.IsInstructor() {
		if caller.ID != user.ID {
			srv.log(ctx).Warn("User update denied", slog.Any("userID", user.ID), slog.Any("callerID", caller.ID))

			return nil, domainerrors.ErrForbidden.WithMessage("Permission denied: you can only edit your own account")
		}
		if role != user.Role {
			srv.log(ctx).Warn("Role change denied", slog.Any("userID", user.ID), slog.String("requested", role.String()))

			return nil, domainerrors.ErrForbidden.WithMessage("Permission denied: only instructors can change roles")
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = role
	user.Version = expectedVersion(input.Version, user.Version)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to update user")
	}

	return user, nil
}

// DeleteUser removes an account that neither instructs a course nor has results.
func (srv *userService) DeleteUser(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	if _, err := srv.requireInstructor(ctx, actor); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return translateRepoError(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}

		courses, err := repoFactory.CourseRepo().CountByInstructor(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count courses of user")
		}

		results, err := repoFactory.ResultRepo().CountByUser(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count results of user")
		}

		if courses > 0 || results > 0 {
			srv.log(ctx).Warn("Refusing to delete user with dependents",
				slog.Any("userID", id),
				slog.Int64("courses", courses),
				slog.Int64("results", results),
			)

			return domainerrors.ErrUserHasDependents
		}

		return translateRepoError(userRepo.Delete(ctx, id), repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to delete user")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	return nil
}

func (srv *userService) requireInstructor(ctx context.Context, actor *usecase.Actor) (*entity.User, error) {
	caller, err := resolveCaller(ctx, srv.userRepo, actor)
	if err != nil {
		return nil, err
	}

	if !caller.IsInstructor() {
		srv.log(ctx).Warn("Account management denied", slog.Any("callerID", caller.ID))

		return nil, domainerrors.ErrForbidden
	}

	return caller, nil
}
