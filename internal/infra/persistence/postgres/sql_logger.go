package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"edusync/config"
	deliverycontext "edusync/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlLogger routes GORM output to slog. Statements run inside a request are
// logged with that request's logger so they carry its request_id.
type sqlLogger struct {
	base          *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &sqlLogger{
		base:  base,
		level: gormlogger.Warn,
	}

	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Database != nil {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *sqlLogger) printf(ctx context.Context, enabledAt gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < enabledAt {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs one statement. Not-found lookups are expected and stay silent;
// constraint violations are client errors surfaced as 4xx, so they log at warn.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var (
		level slog.Level
		msg   string
	)
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		if l.level < gormlogger.Info {
			return
		}
		level, msg = slog.LevelDebug, "SQL no rows"
	case err != nil && isConstraintViolation(err):
		if l.level < gormlogger.Warn {
			return
		}
		level, msg = slog.LevelWarn, "SQL constraint violated"
	case err != nil:
		if l.level < gormlogger.Error {
			return
		}
		level, msg = slog.LevelError, "SQL failed"
	case slow:
		if l.level < gormlogger.Warn {
			return
		}
		level, msg = slog.LevelWarn, "SQL slow"
	default:
		if l.level < gormlogger.Info {
			return
		}
		level, msg = slog.LevelInfo, "SQL"
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if slow {
		attrs = append(attrs, slog.Duration("slow_threshold", l.slowThreshold))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *sqlLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func isConstraintViolation(err error) bool {
	return isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isNotNullConstraintViolation(err) ||
		isCheckConstraintViolation(err)
}
