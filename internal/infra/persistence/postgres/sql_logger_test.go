package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"edusync/config"
	deliverycontext "edusync/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))

	return record
}

func statement() (string, int64) {
	return `SELECT * FROM "courses"`, 1
}

func TestSQLLogger_Trace(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 100 * time.Millisecond}}

	tests := []struct {
		name      string
		debug     bool
		started   time.Duration
		err       error
		wantLevel string
		wantMsg   string
	}{
		{name: "plain query hidden without debug", started: time.Millisecond},
		{name: "plain query with debug", debug: true, started: time.Millisecond, wantLevel: "INFO", wantMsg: "SQL"},
		{name: "slow query", started: time.Second, wantLevel: "WARN", wantMsg: "SQL slow"},
		{name: "not found hidden without debug", err: gorm.ErrRecordNotFound},
		{name: "not found with debug", debug: true, err: gorm.ErrRecordNotFound, wantLevel: "DEBUG", wantMsg: "SQL no rows"},
		{
			name:      "unique violation",
			err:       errors.Wrap(&pgconn.PgError{Code: sqlStateUniqueViolation}, "insert"),
			wantLevel: "WARN",
			wantMsg:   "SQL constraint violated",
		},
		{name: "driver failure", err: errors.New("connection reset"), wantLevel: "ERROR", wantMsg: "SQL failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg.Env.Debug = tt.debug
			l := newSQLLogger(captureLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.started), statement, tt.err)

			if tt.wantMsg == "" {
				assert.Zero(t, buf.Len())

				return
			}

			record := lastRecord(t, &buf)
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, tt.wantMsg, record["msg"])
			assert.Equal(t, `SELECT * FROM "courses"`, record["sql"])
		})
	}
}

func TestSQLLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newSQLLogger(captureLogger(&base), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), captureLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), statement, nil)

	assert.Zero(t, base.Len())
	assert.Equal(t, "req-1", lastRecord(t, &scoped)["request_id"])
}

func TestSQLLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newSQLLogger(captureLogger(&buf), nil).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), statement, errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)

	assert.Zero(t, buf.Len())
}
