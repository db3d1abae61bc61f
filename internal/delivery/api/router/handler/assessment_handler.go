package handler

import (
	"log/slog"
	"net/http"

	"edusync/internal/delivery/api/response"
	"edusync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssessmentHandlerParams holds dependencies for AssessmentHandler, injected by Fx.
type AssessmentHandlerParams struct {
	fx.In

	AssessmentUC usecase.AssessmentUsecase
	Logger       *slog.Logger
}

// AssessmentHandler serves assessment management.
type AssessmentHandler struct {
	assessmentUC usecase.AssessmentUsecase
	logger       *slog.Logger
}

// NewAssessmentHandler is the constructor for AssessmentHandler
func NewAssessmentHandler(params AssessmentHandlerParams) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentUC: params.AssessmentUC,
		logger:       params.Logger,
	}
}

func (h *AssessmentHandler) ListAssessments(c echo.Context) error {
	assessments, err := h.assessmentUC.ListAssessments(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(assessments, toAssessmentResponse))
}

func (h *AssessmentHandler) GetAssessment(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "assessment ID")
	}

	assessment, err := h.assessmentUC.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAssessmentResponse(assessment))
}

func (h *AssessmentHandler) ListByCourse(c echo.Context) error {
	courseID, ok := parseUUIDParam(c, "courseId")
	if !ok {
		return invalidID(c, "course ID")
	}

	assessments, err := h.assessmentUC.ListByCourse(c.Request().Context(), courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(assessments, toAssessmentResponse))
}

func (h *AssessmentHandler) CreateAssessment(c echo.Context) error {
	var req assessmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	assessment, err := h.assessmentUC.CreateAssessment(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAssessmentResponse(assessment))
}

func (h *AssessmentHandler) UpdateAssessment(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "assessment ID")
	}

	var req assessmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment input")
	}

	if err := checkBodyID(c, id, req.ID); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	assessment, err := h.assessmentUC.UpdateAssessment(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAssessmentResponse(assessment))
}

func (h *AssessmentHandler) DeleteAssessment(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "assessment ID")
	}

	if _, err := h.assessmentUC.DeleteAssessment(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (r *assessmentRequest) toInput() *usecase.AssessmentInput {
	return &usecase.AssessmentInput{
		ID:        r.ID,
		CourseID:  r.CourseID,
		Title:     r.Title,
		Questions: r.Questions,
		MaxScore:  r.MaxScore,
		Version:   r.Version,
	}
}
