package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	mockUC "edusync/internal/mocks/usecase"
	"edusync/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Logger: slog.Default(),
	}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	h, authUC := newAuthHandlerForTest(t)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/auth/register",
		body: jsonBody(t, map[string]string{
			"fullName": "Ada Lovelace",
			"email":    "ada@example.com",
			"password": "S3cure!pass",
			"role":     "Student",
		}),
		contentType: echo.MIMEApplicationJSON,
	})

	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "S3cure!pass",
			Role:     "Student",
		}).
		Return(&usecase.RegisterOutput{
			Token: "signed.jwt.token",
			User: &entity.User{
				Name:         "Ada Lovelace",
				Email:        "ada@example.com",
				Role:         entity.RoleStudent,
				PasswordHash: "c2VjcmV0",
				PasswordSalt: []byte("salt"),
			},
		}, nil).
		Once()

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got registerResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "signed.jwt.token", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, authUserResponse{Email: "ada@example.com", Role: "Student", Name: "Ada Lovelace"}, *got.User)
	assert.NotContains(t, rec.Body.String(), "c2VjcmV0")
}

func TestAuthHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name         string
		ucErr        error
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "duplicate email",
			ucErr:        domainerrors.ErrEmailAlreadyRegistered,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "EMAIL_ALREADY_REGISTERED",
		},
		{
			name:         "weak password",
			ucErr:        domainerrors.ErrPasswordStrength,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "PASSWORD_STRENGTH",
		},
		{
			name:         "unknown role",
			ucErr:        domainerrors.ErrInvalidRole,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_ROLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newAuthHandlerForTest(t)

			c, rec := newTestContext(testRequest{
				method:      http.MethodPost,
				target:      "/api/auth/register",
				body:        strings.NewReader(`{"fullName":"Ada","email":"ada@example.com","password":"x","role":"Student"}`),
				contentType: echo.MIMEApplicationJSON,
			})

			authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.ucErr).Once()

			require.NoError(t, h.Register(c))
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedErr, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	c, rec := newTestContext(testRequest{
		method:      http.MethodPost,
		target:      "/api/auth/register",
		body:        strings.NewReader(`{"email":`),
		contentType: echo.MIMEApplicationJSON,
	})

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		h, authUC := newAuthHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/api/auth/login",
			body:        jsonBody(t, map[string]string{"email": "ada@example.com", "password": "S3cure!pass"}),
			contentType: echo.MIMEApplicationJSON,
		})

		authUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "S3cure!pass"}).
			Return(&usecase.LoginOutput{Token: "signed.jwt.token"}, nil).
			Once()

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got tokenResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "signed.jwt.token", got.Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h, authUC := newAuthHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/api/auth/login",
			body:        jsonBody(t, map[string]string{"email": "ada@example.com", "password": "wrong"}),
			contentType: echo.MIMEApplicationJSON,
		})

		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("missing password never reaches the use case", func(t *testing.T) {
		h, _ := newAuthHandlerForTest(t)

		c, rec := newTestContext(testRequest{
			method:      http.MethodPost,
			target:      "/api/auth/login",
			body:        jsonBody(t, map[string]string{"email": "ada@example.com"}),
			contentType: echo.MIMEApplicationJSON,
		})

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "password is required", env.Error.Details)
	})
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/health"})

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}
