package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edusync/config"
	deliverycontext "edusync/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID string
	}{
		{name: "propagates client id", header: "req-42", expectID: "req-42"},
		{name: "replaces id with control characters", header: "req\n42"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "mints id when absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header[deliverycontext.HeaderXRequestID] = []string{tt.header}
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			require.NotEmpty(t, seen)
			if tt.expectID != "" {
				assert.Equal(t, tt.expectID, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, seen, entry["request_id"])
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newContext := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/courses?draft=1", nil)
		ctx := deliverycontext.WithCaller(req.Context(), "grace@example.com", "Instructor")
		rec := httptest.NewRecorder()

		return echo.New().NewContext(req.WithContext(ctx), rec), rec
	}

	t.Run("logs when debug is on", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

		c, _ := newContext()
		require.NoError(t, m.Handle(func(c echo.Context) error {
			return c.String(http.StatusConflict, "conflict")
		})(c))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "HTTP Request", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, float64(http.StatusConflict), entry["status"])
		assert.Equal(t, "grace@example.com", entry["caller"])
		assert.Equal(t, "draft=1", entry["query"])
		assert.Equal(t, "8 B", entry["bytes_out"])
	})

	t.Run("silent when debug is off", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

		c, rec := newContext()
		require.NoError(t, m.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, buf.String())
	})
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(http.StatusOK))
	assert.Equal(t, slog.LevelWarn, levelFor(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusBadGateway))
}
