// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"edusync/config"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 32
	saltLength       = 16
)

// pbkdf2Hasher derives PBKDF2-HMAC-SHA256 digests with a per-user random salt.
type pbkdf2Hasher struct {
	policy  *config.PasswordStrengthConfig
	entropy io.Reader
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	policy := config.DefaultPasswordStrength()
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = cfg.PasswordStrength
	}

	return &pbkdf2Hasher{
		policy:  policy,
		entropy: rand.Reader,
	}
}

// Hash generates a fresh salt and returns the base64 digest alongside it.
func (h *pbkdf2Hasher) Hash(password string) (string, []byte, error) {
	if password == "" {
		return "", nil, errors.New("password must not be empty")
	}

	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(h.entropy, salt); err != nil {
		return "", nil, errors.Wrap(err, "failed to generate salt")
	}

	return derive(password, salt), salt, nil
}

// Verify recomputes the digest with the stored salt and compares in constant time.
func (h *pbkdf2Hasher) Verify(password, digest string, salt []byte) bool {
	if password == "" || digest == "" || len(salt) == 0 {
		return false
	}

	candidate := derive(password, salt)

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}

// ValidatePasswordStrength checks length, uppercase, lowercase and digit rules in that order.
func (h *pbkdf2Hasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithMessage(
			fmt.Sprintf("Password must be at least %d characters long", h.policy.MinLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		return domainerrors.ErrPasswordStrength.WithMessage("Password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		return domainerrors.ErrPasswordStrength.WithMessage("Password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !hasDigit {
		return domainerrors.ErrPasswordStrength.WithMessage("Password must contain at least one number")
	}

	return nil
}

func derive(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(key)
}
