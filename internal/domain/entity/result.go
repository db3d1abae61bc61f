package entity

import (
	"time"

	"github.com/google/uuid"
)

// Result is a single attempt of a user at an assessment.
type Result struct {
	ID           uuid.UUID
	AssessmentID *uuid.UUID
	UserID       *uuid.UUID
	Score        int
	AttemptDate  time.Time
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserResult is the projection of a result shown to the student who made it.
type UserResult struct {
	ResultID     uuid.UUID  `json:"result_id"`
	AssessmentID *uuid.UUID `json:"assessment_id"`
	Score        int        `json:"score"`
	AttemptDate  time.Time  `json:"attempt_date"`
}

// InstructorResult is the joined view of a result shown to a course instructor.
type InstructorResult struct {
	ResultID        uuid.UUID  `json:"result_id"`
	Score           int        `json:"score"`
	AttemptDate     time.Time  `json:"attempt_date"`
	StudentID       *uuid.UUID `json:"student_id"`
	StudentName     string     `json:"student_name"`
	AssessmentID    *uuid.UUID `json:"assessment_id"`
	AssessmentTitle string     `json:"assessment_title"`
	MaxScore        int        `json:"max_score"`
}

const (
	// UnknownStudentName is shown when a result has no resolvable user.
	UnknownStudentName = "Unknown Student"
	// UnknownAssessmentTitle is shown when a result has no resolvable assessment.
	UnknownAssessmentTitle = "Unknown Quiz"
)
