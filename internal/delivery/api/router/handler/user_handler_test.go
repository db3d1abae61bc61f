package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	mockUC "edusync/internal/mocks/usecase"
	"edusync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandlerForTest(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{
		UserUC: userUC,
		Logger: slog.Default(),
	}), userUC
}

func TestUserHandler_GetUser_HidesCredentials(t *testing.T) {
	h, userUC := newUserHandlerForTest(t)

	id := uuid.New()
	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/users/" + id.String(),
		params: map[string]string{"id": id.String()},
	})

	userUC.EXPECT().GetUser(mock.Anything, id).Return(&entity.User{
		ID:           id,
		Name:         "Ada",
		Email:        "ada@example.com",
		Role:         entity.RoleStudent,
		PasswordHash: "aGFzaA==",
		PasswordSalt: []byte("salt"),
		Version:      2,
	}, nil).Once()

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	decodeData(t, rec, &got)
	assert.Equal(t, "ada@example.com", got["email"])
	assert.Equal(t, "Student", got["role"])
	assert.NotContains(t, got, "password_hash")
	assert.NotContains(t, rec.Body.String(), "aGFzaA==")
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/users",
			body: jsonBody(t, map[string]string{
				"name":     "Grace",
				"email":    "grace@example.com",
				"password": "S3cure!pass",
				"role":     "Instructor",
			}),
			contentType: echo.MIMEApplicationJSON,
			actor:       instructorActor(),
		})

		userUC.EXPECT().
			CreateUser(mock.Anything, instructorActor(), &usecase.CreateUserInput{
				Name:     "Grace",
				Email:    "grace@example.com",
				Password: "S3cure!pass",
				Role:     "Instructor",
			}).
			Return(&entity.User{ID: uuid.New(), Name: "Grace", Email: "grace@example.com", Role: entity.RoleInstructor, Version: 1}, nil).
			Once()

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		h, _ := newUserHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/users",
			body: jsonBody(t, map[string]string{
				"name":     "Grace",
				"email":    "not-an-email",
				"password": "S3cure!pass",
				"role":     "Instructor",
			}),
			contentType: echo.MIMEApplicationJSON,
			actor:       instructorActor(),
		})

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email must be a valid email address", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("no caller", func(t *testing.T) {
		h, _ := newUserHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/api/users",
			body:        jsonBody(t, map[string]string{"name": "Grace"}),
			contentType: echo.MIMEApplicationJSON,
		})

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	h, userUC := newUserHandlerForTest(t)

	id := uuid.New()
	student := &usecase.Actor{Email: "alan@example.com", Role: entity.RoleStudent}
	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		target: "/api/users/" + id.String(),
		body: jsonBody(t, map[string]any{
			"id":    id,
			"name":  "Grace H.",
			"email": "grace@example.com",
			"role":  "Instructor",
		}),
		contentType: echo.MIMEApplicationJSON,
		params:      map[string]string{"id": id.String()},
		actor:       student,
	})

	userUC.EXPECT().
		UpdateUser(mock.Anything, student, &usecase.UpdateUserInput{
			ID:    id,
			Name:  "Grace H.",
			Email: "grace@example.com",
			Role:  "Instructor",
		}).
		Return(&entity.User{ID: id, Name: "Grace H.", Email: "grace@example.com", Role: entity.RoleInstructor, Version: 2}, nil).
		Once()

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got userResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "Grace H.", got.Name)
	assert.Equal(t, 2, got.Version)
}

func TestUserHandler_UpdateUser_RoleChangeDenied(t *testing.T) {
	h, userUC := newUserHandlerForTest(t)

	id := uuid.New()
	student := &usecase.Actor{Email: "alan@example.com", Role: entity.RoleStudent}
	c, rec := newTestContext(testRequest{
		method: http.MethodPut,
		target: "/api/users/" + id.String(),
		body: jsonBody(t, map[string]any{
			"name":  "Alan",
			"email": "alan@example.com",
			"role":  "Instructor",
		}),
		contentType: echo.MIMEApplicationJSON,
		params:      map[string]string{"id": id.String()},
		actor:       student,
	})

	userUC.EXPECT().
		UpdateUser(mock.Anything, student, mock.AnythingOfType("*usecase.UpdateUserInput")).
		Return(nil, domainerrors.ErrForbidden.WithMessage("Permission denied: only instructors can change roles")).
		Once()

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, rec).Error.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	tests := []struct {
		name         string
		ucErr        error
		expectedCode int
	}{
		{name: "deleted", ucErr: nil, expectedCode: http.StatusNoContent},
		{name: "still owns data", ucErr: domainerrors.ErrUserHasDependents, expectedCode: http.StatusConflict},
		{name: "missing", ucErr: domainerrors.ErrUserNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, userUC := newUserHandlerForTest(t)

			id := uuid.New()
			c, rec := newTestContext(testRequest{
				method: http.MethodDelete,
				target: "/api/users/" + id.String(),
				params: map[string]string{"id": id.String()},
				actor:  instructorActor(),
			})

			userUC.EXPECT().DeleteUser(mock.Anything, instructorActor(), id).Return(tt.ucErr).Once()

			require.NoError(t, h.DeleteUser(c))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
