package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentModel mirrors the 'assessments' table. Results are removed by the
// application before their assessment, the store does not cascade.
type AssessmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Questions string    `gorm:"type:text"`
	MaxScore  int       `gorm:"not null;default:0"`
	Version   int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Course  *CourseModel   `gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT"`
	Results []*ResultModel `gorm:"foreignKey:AssessmentID"`
}

// TableName explicitly sets the table name for GORM.
func (AssessmentModel) TableName() string {
	return "assessments"
}
