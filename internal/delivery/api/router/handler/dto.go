package handler

import (
	"time"

	"edusync/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Requests ---

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type updateUserRequest struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name" validate:"required"`
	Email   string     `json:"email" validate:"required,email"`
	Role    string     `json:"role" validate:"required"`
	Version *int       `json:"version"`
}

type assessmentRequest struct {
	ID        *uuid.UUID `json:"id"`
	CourseID  uuid.UUID  `json:"course_id" validate:"required"`
	Title     string     `json:"title" validate:"required"`
	Questions string     `json:"questions"`
	MaxScore  int        `json:"max_score" validate:"gte=0"`
	Version   *int       `json:"version"`
}

type resultRequest struct {
	ID           *uuid.UUID `json:"id"`
	AssessmentID *uuid.UUID `json:"assessment_id"`
	UserID       *uuid.UUID `json:"user_id"`
	Score        int        `json:"score" validate:"gte=0"`
	AttemptDate  *time.Time `json:"attempt_date"`
	Version      *int       `json:"version"`
}

// --- Responses ---

type tokenResponse struct {
	Token string `json:"token"`
}

type authUserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type registerResponse struct {
	Token string            `json:"token"`
	User  *authUserResponse `json:"user"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type courseResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	MediaURL     *string    `json:"media_url"`
	Version      int        `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type assessmentResponse struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	Title     string    `json:"title"`
	Questions string    `json:"questions"`
	MaxScore  int       `json:"max_score"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type resultResponse struct {
	ID           uuid.UUID  `json:"id"`
	AssessmentID *uuid.UUID `json:"assessment_id"`
	UserID       *uuid.UUID `json:"user_id"`
	Score        int        `json:"score"`
	AttemptDate  time.Time  `json:"attempt_date"`
	Version      int        `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// --- Mappers ---

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		Version:   user.Version,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toCourseResponse(course *entity.Course) *courseResponse {
	resp := &courseResponse{
		ID:           course.ID,
		Title:        course.Title,
		Description:  course.Description,
		InstructorID: course.InstructorID,
		Version:      course.Version,
		CreatedAt:    course.CreatedAt,
		UpdatedAt:    course.UpdatedAt,
	}
	if course.HasMedia() {
		resp.MediaURL = &course.MediaURL
	}

	return resp
}

func toAssessmentResponse(assessment *entity.Assessment) *assessmentResponse {
	return &assessmentResponse{
		ID:        assessment.ID,
		CourseID:  assessment.CourseID,
		Title:     assessment.Title,
		Questions: assessment.Questions,
		MaxScore:  assessment.MaxScore,
		Version:   assessment.Version,
		CreatedAt: assessment.CreatedAt,
		UpdatedAt: assessment.UpdatedAt,
	}
}

func toResultResponse(result *entity.Result) *resultResponse {
	return &resultResponse{
		ID:           result.ID,
		AssessmentID: result.AssessmentID,
		UserID:       result.UserID,
		Score:        result.Score,
		AttemptDate:  result.AttemptDate,
		Version:      result.Version,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}
}

func mapSlice[E, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
