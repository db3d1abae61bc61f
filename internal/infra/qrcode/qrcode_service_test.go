package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://edusync.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCourseQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://edusync.example.com")

	qrBytes, err := service.GenerateCourseQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateCourseQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://edusync.example.com")

			qrBytes, err := service.GenerateCourseQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateCourseQR_NilID(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://edusync.example.com")

	_, err := service.GenerateCourseQR(uuid.Nil)
	assert.Error(t, err)
}

func TestQRCodeService_CourseLink(t *testing.T) {
	courseID := uuid.MustParse("6f1c1c8e-0b7a-4d59-9a0e-6a8d4c2e9b11")

	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"plain base", "https://edusync.example.com", "https://edusync.example.com/courses/6f1c1c8e-0b7a-4d59-9a0e-6a8d4c2e9b11"},
		{"trailing slash", "https://edusync.example.com/", "https://edusync.example.com/courses/6f1c1c8e-0b7a-4d59-9a0e-6a8d4c2e9b11"},
		{"empty base", "", "/courses/6f1c1c8e-0b7a-4d59-9a0e-6a8d4c2e9b11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, "M", tt.baseURL)
			assert.Equal(t, tt.want, service.CourseLink(courseID))
		})
	}
}
