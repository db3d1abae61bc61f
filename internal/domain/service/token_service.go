package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
type TokenService interface {
	// IssueToken signs a token whose subject is the email.
	IssueToken(email, role string) (string, error)

	// ValidateToken checks signature, issuer, audience and expiry.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the lifetime of issued tokens.
	TokenTTL() time.Duration
}
