// Package context carries per-request values (request ID, caller and the
// request-scoped logger) from the delivery layer down to the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyCallerEmail is the key for the email of the authenticated caller.
	KeyCallerEmail ContextKey = "caller_email"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on the echo context, or a fresh
// UUID when the request ID middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithCaller records the authenticated caller. The request logger, when
// present, is replaced by a child carrying the caller's email and role.
func WithCaller(ctx context.Context, email, role string) context.Context {
	ctx = context.WithValue(ctx, KeyCallerEmail, email)

	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("caller", email),
			slog.String("role", role),
		))
	}

	return ctx
}

// GetCallerEmail returns the authenticated caller, or "" for anonymous requests.
func GetCallerEmail(ctx context.Context) string {
	email, _ := ctx.Value(KeyCallerEmail).(string)

	return email
}
