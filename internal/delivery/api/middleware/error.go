package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"edusync/internal/delivery/api/response"
	deliverycontext "edusync/internal/delivery/context"
	domainerrors "edusync/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that reaches echo as the JSON error
// envelope. Handlers render AppErrors themselves; this covers the rest.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	req := c.Request()

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", req.URL.Path),
				slog.Any("error", err),
			)
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	// Routing, binding and body-limit failures raised by echo itself.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, codeForStatus(httpErr.Code), message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	)
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

// codeForStatus turns a status into an error code: 404 -> NOT_FOUND,
// 413 -> REQUEST_ENTITY_TOO_LARGE.
func codeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
