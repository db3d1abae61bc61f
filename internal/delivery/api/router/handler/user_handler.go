package handler

import (
	"log/slog"
	"net/http"

	"edusync/internal/delivery/api/middleware"
	"edusync/internal/delivery/api/response"
	"edusync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account management.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(users, toUserResponse))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing caller identity")
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), actor, &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing caller identity")
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "user ID")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := checkBodyID(c, id, req.ID); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), actor, &usecase.UpdateUserInput{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Version: req.Version,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing caller identity")
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidID(c, "user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
