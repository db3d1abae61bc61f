package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for courses
type QRCodeService interface {
	// GenerateCourseQR returns a PNG encoding the course share link
	GenerateCourseQR(courseID uuid.UUID) ([]byte, error)

	// CourseLink returns the URL encoded in the course QR code
	CourseLink(courseID uuid.UUID) string
}
