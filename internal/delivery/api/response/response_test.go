package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "edusync/internal/delivery/context"
	domainerrors "edusync/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "c-1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"id": "c-1"}, body["data"])
	assert.Equal(t, map[string]any{"request_id": "req-1"}, body["meta"])
	assert.NotContains(t, body, "error")
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "client error keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title is required"), "create course"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "title is required",
		},
		{
			name:       "unauthorized hides details",
			err:        domainerrors.ErrUnauthorized.WithDetails("token expired"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "server error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert course"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "empty details omitted",
			err:        domainerrors.ErrCourseNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "COURSE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			problem, ok := decode(t, rec)["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, problem["code"])
			if tt.wantDetails == nil {
				assert.NotContains(t, problem, "details")
			} else {
				assert.Equal(t, tt.wantDetails, problem["details"])
			}
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)

	require.ErrorIs(t, err, cause)
	assert.Zero(t, rec.Body.Len())
}

func TestNoContent(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, NoContent(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
