package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edusync/config"
	"edusync/internal/delivery/api/response"
	deliverycontext "edusync/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "64B"
	cfg.HTTP.AllowOrigins = []string{"https://app.example"}

	return newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), func(e *echo.Echo) {
		e.POST("/echo", func(c echo.Context) error {
			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return err
			}

			return response.Success(c, http.StatusOK, string(body))
		})
	})
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestServer_BodyLimit(t *testing.T) {
	e := newTestEcho(t)

	small := httptest.NewRecorder()
	e.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, small.Code)

	large := httptest.NewRecorder()
	e.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 128))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", errorCode(t, large))
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	e := newTestEcho(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_CORSPreflight(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), deliverycontext.HeaderXRequestID)
}
