// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "edusync/internal/domain/entity"

// Actor identifies the authenticated caller of a use case, as carried by the
// bearer token.
type Actor struct {
	Email string
	Role  entity.Role
}

// IsInstructor reports whether the caller holds the instructor role.
func (a *Actor) IsInstructor() bool {
	return a != nil && a.Role == entity.RoleInstructor
}
