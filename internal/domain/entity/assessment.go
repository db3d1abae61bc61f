package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is a quiz belonging to a course.
type Assessment struct {
	ID        uuid.UUID
	CourseID  uuid.UUID
	Title     string
	Questions string // opaque to the backend, owned by the client
	MaxScore  int
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	// Results is populated only by loaders that fetch the assessment tree.
	Results []*Result
}
