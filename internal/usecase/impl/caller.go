package impl

import (
	"context"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	"edusync/internal/usecase"

	"github.com/pkg/errors"
)

// resolveCaller loads the account behind the token. Authorization decisions
// use the stored role, so a demoted account loses rights before its token expires.
func resolveCaller(ctx context.Context, users repository.UserRepository, actor *usecase.Actor) (*entity.User, error) {
	if actor == nil || actor.Email == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := users.FindByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to resolve caller")
	}

	return user, nil
}
