package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"edusync/internal/delivery/api/middleware"
	"edusync/internal/delivery/api/response"
	"edusync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mediaFormField = "file"

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CourseUC usecase.CourseUsecase
	Logger   *slog.Logger
}

// CourseHandler serves course management. Writes are multipart forms so a
// media file can travel with the fields.
type CourseHandler struct {
	courseUC usecase.CourseUsecase
	logger   *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		courseUC: params.CourseUC,
		logger:   params.Logger,
	}
}

func (h *CourseHandler) ListCourses(c echo.Context) error {
	var instructorID *uuid.UUID
	if raw := c.QueryParam("instructorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invalidID(c, "instructor ID")
		}
		instructorID = &id
	}

	courses, err := h.courseUC.ListCourses(c.Request().Context(), instructorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(courses, toCourseResponse))
}

func (h *CourseHandler) GetCourse(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "course ID")
	}

	course, err := h.courseUC.GetCourse(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCourseResponse(course))
}

func (h *CourseHandler) ListByInstructor(c echo.Context) error {
	instructorID, ok := parseUUIDParam(c, "instructorId")
	if !ok {
		return invalidID(c, "instructor ID")
	}

	courses, err := h.courseUC.ListByInstructor(c.Request().Context(), instructorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(courses, toCourseResponse))
}

// CourseQRCode renders the share link of a course as a PNG image.
func (h *CourseHandler) CourseQRCode(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "course ID")
	}

	png, err := h.courseUC.CourseQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *CourseHandler) CreateCourse(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing caller identity")
	}

	instructorID, ok := optionalUUIDForm(c, "instructorId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid instructor ID.")
	}

	media, closeMedia, err := openMedia(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid media file")
	}
	defer closeMedia()

	course, err := h.courseUC.CreateCourse(c.Request().Context(), actor, &usecase.CreateCourseInput{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		InstructorID: instructorID,
		Media:        media,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCourseResponse(course))
}

func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing caller identity")
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "course ID")
	}

	bodyID, ok := optionalUUIDForm(c, "id")
	if !ok {
		return invalidID(c, "course ID")
	}
	if err := checkBodyID(c, id, bodyID); err != nil {
		return err
	}

	instructorID, ok := optionalUUIDForm(c, "instructorId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid instructor ID.")
	}

	var version *int
	if raw := c.FormValue("version"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid version")
		}
		version = &v
	}

	media, closeMedia, err := openMedia(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid media file")
	}
	defer closeMedia()

	course, err := h.courseUC.UpdateCourse(c.Request().Context(), actor, &usecase.UpdateCourseInput{
		ID:           id,
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		InstructorID: instructorID,
		Media:        media,
		Version:      version,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCourseResponse(course))
}

func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing caller identity")
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "course ID")
	}

	if _, err := h.courseUC.DeleteCourse(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// optionalUUIDForm parses a form value that may be absent.
func optionalUUIDForm(c echo.Context, name string) (*uuid.UUID, bool) {
	raw := c.FormValue(name)
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}

	return &id, true
}

// openMedia returns the uploaded file, or nil when the form carries none.
// The returned func closes the file and is always safe to call.
func openMedia(c echo.Context) (*usecase.MediaUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(mediaFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		return nil, noop, errors.Wrap(err, "failed to read media file")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to open media file")
	}

	return toMediaUpload(header, file), func() { _ = file.Close() }, nil
}

func toMediaUpload(header *multipart.FileHeader, file multipart.File) *usecase.MediaUpload {
	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return &usecase.MediaUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	}
}
