package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course is a unit of teaching material owned by an instructor.
type Course struct {
	ID           uuid.UUID
	Title        string
	Description  string
	InstructorID *uuid.UUID
	MediaURL     string
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Assessments is populated only by loaders that fetch the course tree.
	Assessments []*Assessment
}

// HasMedia reports whether an uploaded file is attached to the course.
func (c *Course) HasMedia() bool {
	return c.MediaURL != ""
}

// IsOwnedBy reports whether the given user may manage the course.
// Courses without an instructor can be managed by any instructor.
func (c *Course) IsOwnedBy(userID uuid.UUID) bool {
	return c.InstructorID == nil || *c.InstructorID == userID
}
