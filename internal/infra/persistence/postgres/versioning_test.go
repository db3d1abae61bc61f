package postgres

import (
	"net/http"
	"testing"

	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStaleUpdate(t *testing.T) {
	assert.ErrorIs(t, classifyStaleUpdate(true, repository.ErrCourseNotFound), repository.ErrConcurrentUpdate)
	assert.ErrorIs(t, classifyStaleUpdate(false, repository.ErrCourseNotFound), repository.ErrCourseNotFound)
}

func TestMapWriteError(t *testing.T) {
	assert.NoError(t, mapWriteError(nil, "noop", domainerrors.ErrConflict))

	err := mapWriteError(&pgconn.PgError{Code: "23505"}, "insert", domainerrors.ErrUserAlreadyExists)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	err = mapWriteError(&pgconn.PgError{Code: "23503"}, "insert", domainerrors.ErrConflict)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))

	err = mapWriteError(&pgconn.PgError{Code: "23502"}, "insert", domainerrors.ErrConflict)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = mapWriteError(repository.ErrConcurrentUpdate, "update", domainerrors.ErrConflict)
	assert.ErrorIs(t, err, repository.ErrConcurrentUpdate)

	err = mapWriteError(errors.New("boom"), "insert", domainerrors.ErrConflict)
	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestMapDeleteError(t *testing.T) {
	err := mapDeleteError(&pgconn.PgError{Code: "23503"}, "delete")
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidReference))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())

	err = mapDeleteError(errors.New("boom"), "delete")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
