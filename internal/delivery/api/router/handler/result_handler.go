package handler

import (
	"log/slog"
	"net/http"

	"edusync/internal/delivery/api/response"
	"edusync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ResultHandlerParams holds dependencies for ResultHandler, injected by Fx.
type ResultHandlerParams struct {
	fx.In

	ResultUC usecase.ResultUsecase
	Logger   *slog.Logger
}

// ResultHandler serves assessment results.
type ResultHandler struct {
	resultUC usecase.ResultUsecase
	logger   *slog.Logger
}

// NewResultHandler is the constructor for ResultHandler
func NewResultHandler(params ResultHandlerParams) *ResultHandler {
	return &ResultHandler{
		resultUC: params.ResultUC,
		logger:   params.Logger,
	}
}

func (h *ResultHandler) ListResults(c echo.Context) error {
	results, err := h.resultUC.ListResults(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(results, toResultResponse))
}

func (h *ResultHandler) GetResult(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "result ID")
	}

	result, err := h.resultUC.GetResult(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toResultResponse(result))
}

// ListByUser returns the results of one student, newest first.
func (h *ResultHandler) ListByUser(c echo.Context) error {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return invalidID(c, "user ID")
	}

	results, err := h.resultUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}

// ListForInstructorByCourse returns every result of a course joined with
// student and assessment names.
func (h *ResultHandler) ListForInstructorByCourse(c echo.Context) error {
	courseID, ok := parseUUIDParam(c, "courseId")
	if !ok {
		return invalidID(c, "course ID")
	}

	results, err := h.resultUC.ListForInstructorByCourse(c.Request().Context(), courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}

func (h *ResultHandler) CreateResult(c echo.Context) error {
	var req resultRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid result input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.resultUC.CreateResult(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toResultResponse(result))
}

func (h *ResultHandler) UpdateResult(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "result ID")
	}

	var req resultRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid result input")
	}

	if err := checkBodyID(c, id, req.ID); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.resultUC.UpdateResult(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toResultResponse(result))
}

func (h *ResultHandler) DeleteResult(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "result ID")
	}

	if err := h.resultUC.DeleteResult(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (r *resultRequest) toInput() *usecase.ResultInput {
	return &usecase.ResultInput{
		ID:           r.ID,
		AssessmentID: r.AssessmentID,
		UserID:       r.UserID,
		Score:        r.Score,
		AttemptDate:  r.AttemptDate,
		Version:      r.Version,
	}
}
