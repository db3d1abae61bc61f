// Package postgres implements the EduSync repositories on GORM over PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"edusync/config"
	"edusync/internal/domain/lifecycle"
	"edusync/internal/errors"
	"edusync/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval   = 5 * time.Second
	poolWaitWarnDuration = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the connection pool (primary plus any replicas), migrates the
// schema when database.autoMigrate is set and ties the pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Multi-statement writes use explicit transactions through the tx manager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newSQLLogger(params.Logger, params.Config),
	})

	if params.Config.Database != nil && params.Config.Database.AutoMigrate {
		if err := migrate(db, params.Logger); err != nil {
			return nil, err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB")
	}

	sampleCtx, stopSampling := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			stats := sqlDB.Stats()
			params.Logger.Info("Postgres connected",
				slog.Int("max_open_conns", stats.MaxOpenConnections),
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
			)

			go samplePool(sampleCtx, params.Logger, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopSampling()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	tables := model.All()
	if err := db.AutoMigrate(tables...); err != nil {
		return errors.Wrap(err, "migrate schema")
	}
	logger.Info("Database schema migrated", slog.Int("tables", len(tables)))

	return nil
}

// samplePool logs connection waits seen since the previous sample. Waits mean
// requests queued for a connection, so the pool is too small for the load.
func samplePool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWaits(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

func poolWaits(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnDuration {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
