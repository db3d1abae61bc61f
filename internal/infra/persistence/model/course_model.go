package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel mirrors the 'courses' table.
type CourseModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	InstructorID *uuid.UUID `gorm:"type:uuid;index"`
	MediaURL     *string    `gorm:"type:varchar(1024)"`
	Version      int        `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Instructor  *UserModel         `gorm:"foreignKey:InstructorID;constraint:OnDelete:RESTRICT"`
	Assessments []*AssessmentModel `gorm:"foreignKey:CourseID"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}
