// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash derives a digest from the password using a freshly generated salt.
	Hash(password string) (digest string, salt []byte, err error)

	// Verify recomputes the digest with the stored salt and compares it with
	// the stored digest. Empty inputs never match.
	Verify(password, digest string, salt []byte) bool

	// ValidatePasswordStrength reports the first password policy rule the
	// password violates.
	ValidatePasswordStrength(password string) error
}
