package model

import (
	"time"

	"github.com/google/uuid"
)

// ResultModel mirrors the 'results' table.
type ResultModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssessmentID *uuid.UUID `gorm:"type:uuid;index"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	Score        int        `gorm:"not null;default:0"`
	AttemptDate  time.Time  `gorm:"not null"`
	Version      int        `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Assessment *AssessmentModel `gorm:"foreignKey:AssessmentID;constraint:OnDelete:RESTRICT"`
	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ResultModel) TableName() string {
	return "results"
}

// InstructorResultRow is the scan target of the instructor results join.
type InstructorResultRow struct {
	ResultID        uuid.UUID
	Score           int
	AttemptDate     time.Time
	StudentID       *uuid.UUID
	StudentName     *string
	AssessmentID    *uuid.UUID
	AssessmentTitle *string
	MaxScore        *int
}
