package usecase

import (
	"context"

	"edusync/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the access token and the account it was issued for.
type RegisterOutput struct {
	Token string
	User  *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	Token string
}

// AuthUsecase defines registration and login.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
