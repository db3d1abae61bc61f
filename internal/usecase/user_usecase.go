package usecase

import (
	"context"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create an account directly.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the mutable account fields. A nil Version means the
// caller accepts whatever version is currently stored.
type UpdateUserInput struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Role    string
	Version *int
}

// UserUsecase defines account management operations. Creating and deleting
// accounts is reserved to instructors; any caller may edit their own profile
// but only an instructor may change a role.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, actor *Actor, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, actor *Actor, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser refuses to remove users that still own courses or results.
	DeleteUser(ctx context.Context, actor *Actor, id uuid.UUID) error
}
