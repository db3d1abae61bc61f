package handler

import (
	"edusync/internal/delivery/api/response"
	domainerrors "edusync/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseUUIDParam reads a path parameter as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func invalidID(c echo.Context, name string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+name)
}

// checkBodyID rejects a body id that differs from the path id.
func checkBodyID(c echo.Context, pathID uuid.UUID, bodyID *uuid.UUID) error {
	if bodyID != nil && *bodyID != pathID {
		return response.HandleAppError(c, domainerrors.ErrIDMismatch)
	}

	return nil
}
