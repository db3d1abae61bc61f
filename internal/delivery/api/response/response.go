// Package response renders the JSON envelope every API endpoint returns:
// {"data": ..., "meta": {...}} on success, {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "edusync/internal/delivery/context"
	domainerrors "edusync/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Meta is attached to every body so clients can quote the request id.
type Meta struct {
	RequestID string `json:"request_id"`
}

// Problem describes a failed request.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type successBody struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type errorBody struct {
	Error Problem `json:"error"`
	Meta  Meta    `json:"meta"`
}

func metaOf(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data under the "data" key.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, successBody{Data: data, Meta: metaOf(c)})
}

// NoContent writes a bodiless 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes a problem body. Details are dropped on 401, 403 and 5xx so
// internals and auth decisions are never explained to the client.
func Error(c echo.Context, status int, code, message string, details any) error {
	if !exposesDetails(status) {
		details = nil
	}

	return c.JSON(status, errorBody{
		Error: Problem{Code: code, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

func exposesDetails(status int) bool {
	return status < http.StatusInternalServerError &&
		status != http.StatusUnauthorized &&
		status != http.StatusForbidden
}

// BadRequest writes a 400 without details.
func BadRequest(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message, nil)
}

// BindingError reports a body or parameter that could not be decoded.
func BindingError(c echo.Context, code, message string) error {
	return BadRequest(c, code, message)
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, nil)
}

func Forbidden(c echo.Context, code, message string) error {
	return Error(c, http.StatusForbidden, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// HandleAppError renders err when it carries an AppError. Any other error is
// returned with a stack so the echo error handler logs it and answers 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
