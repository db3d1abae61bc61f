package impl

import (
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateRepoError maps the sentinel errors of a repository to the
// application error taxonomy. Anything else is wrapped with message.
func translateRepoError(err, repoNotFound error, notFound *domainerrors.BaseError, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repoNotFound):
		return notFound
	case errors.Is(err, repository.ErrConcurrentUpdate):
		return domainerrors.ErrConcurrentUpdate
	default:
		return errors.Wrap(err, message)
	}
}

// expectedVersion picks the version an update is checked against.
func expectedVersion(requested *int, stored int) int {
	if requested != nil {
		return *requested
	}

	return stored
}
