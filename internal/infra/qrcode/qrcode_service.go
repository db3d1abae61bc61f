package qrcode

import (
	"fmt"
	"strings"

	"edusync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// CourseLink returns the share URL of a course
func (s *qrcodeService) CourseLink(courseID uuid.UUID) string {
	return s.baseURL + "/courses/" + courseID.String()
}

// GenerateCourseQR renders the course share URL as a PNG
func (s *qrcodeService) GenerateCourseQR(courseID uuid.UUID) ([]byte, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("course ID is required")
	}

	qrCode, err := qrcode.New(s.CourseLink(courseID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
