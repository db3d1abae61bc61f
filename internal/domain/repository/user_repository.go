// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrConcurrentUpdate is returned by Update methods when the stored version no
// longer matches the expected one but the row still exists.
var ErrConcurrentUpdate = errors.New("concurrent update detected")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user. A taken email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the user if user.Version still matches the stored row and
	// bumps the version on success.
	Update(ctx context.Context, user *entity.User) error

	Delete(ctx context.Context, id uuid.UUID) error
}
