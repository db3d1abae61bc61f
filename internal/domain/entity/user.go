// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in: either a student or an instructor.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // unique, compared exactly as stored
	PasswordHash string // base64 PBKDF2 digest
	PasswordSalt []byte
	Role         Role
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsInstructor reports whether the user may own courses.
func (u *User) IsInstructor() bool {
	return u != nil && u.Role == RoleInstructor
}
