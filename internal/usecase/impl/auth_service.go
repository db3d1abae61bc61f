// Package impl contains the implementation of the application's business logic.
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

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	events       *EventDispatcher
	validate     *validator.Validate
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Events       *EventDispatcher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		events:       params.Events,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the request in a fixed order, stores the account and
// signs a token for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrEmailAlreadyRegistered
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up email")
	}

	digest, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         input.FullName,
		Email:        input.Email,
		PasswordHash: digest,
		PasswordSalt: salt,
		Role:         entity.Role(input.Role),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.IssueToken(user.Email, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.events.Dispatch(ctx, entity.EventUserRegistered, &userRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role.String(),
	})

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.RegisterOutput{Token: token, User: user}, nil
}

func (srv *authService) validateRegistration(input *usecase.RegisterInput) error {
	if input.FullName == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Missing required fields")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	if err := srv.validate.Var(input.Email, "email"); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email format")
	}

	if !entity.Role(input.Role).IsValid() {
		return domainerrors.ErrInvalidRole
	}

	return nil
}

// Login answers unknown emails and wrong passwords with the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Login for unknown email")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt) {
		srv.log(ctx).Debug("Login with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(user.Email, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{Token: token}, nil
}
