package postgres

import (
	"context"
	"time"

	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// updateVersioned writes columns to the row only if its version still equals
// expected, and bumps the version. It returns the new version and update time.
// A row that vanished yields notFound; a row that moved on yields
// repository.ErrConcurrentUpdate.
func updateVersioned(
	ctx context.Context,
	db *gorm.DB,
	table any,
	id uuid.UUID,
	expected int,
	columns map[string]any,
	notFound error,
) (int, time.Time, error) {
	now := time.Now().UTC()
	columns["version"] = gorm.Expr("version + 1")
	columns["updated_at"] = now

	res := db.WithContext(ctx).Model(table).
		Where("id = ? AND version = ?", id, expected).
		Updates(columns)
	if res.Error != nil {
		return 0, time.Time{}, res.Error
	}

	if res.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(table).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, time.Time{}, errors.Wrap(err, "failed to re-read row after stale update")
		}

		return 0, time.Time{}, classifyStaleUpdate(count > 0, notFound)
	}

	return expected + 1, now, nil
}

// classifyStaleUpdate maps an update that touched no rows to a typed error.
func classifyStaleUpdate(rowExists bool, notFound error) error {
	if rowExists {
		return repository.ErrConcurrentUpdate
	}

	return notFound
}

// deleteByIDs physically removes the rows with the given ids.
func deleteByIDs(ctx context.Context, db *gorm.DB, table any, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := db.WithContext(ctx).Where("id IN ?", ids).Delete(table)
	if res.Error != nil {
		return 0, mapDeleteError(res.Error, "failed to delete rows")
	}

	return res.RowsAffected, nil
}

// mapDeleteError converts a failed delete into a domain error. A row that is
// still referenced is a conflict with the current state, not a bad request.
func mapDeleteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrConflict.WithMessage("Resource is still referenced").WrapMessage(details)
	}

	return mapWriteError(err, details, domainerrors.ErrConflict)
}

// mapWriteError converts constraint violations into domain errors.
func mapWriteError(err error, details string, onUnique error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrConcurrentUpdate):
		return err
	case isUniqueConstraintViolation(err):
		return errors.Wrap(onUnique, details)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidReference.WrapMessage(details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
