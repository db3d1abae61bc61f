// Package worker serves the push endpoint that receives EduSync events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"edusync/config"
	"edusync/internal/delivery"
	"edusync/internal/delivery/middleware"
	"edusync/internal/delivery/worker/handler"
	"edusync/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	healthPath = "/health"
	pushPath   = "/push"
)

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// Push messages are small JSON envelopes; anything larger is not ours.
	e.Use(echomiddleware.BodyLimit(cfg.Worker.MaxPushBodySize))

	e.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(pushPath, push.HandlePush)

	return e
}

// Serve blocks until the listener fails or the server is shut down.
func (s *workerServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting worker HTTP server",
		slog.String("host_port", hostPort),
		slog.String("push_path", pushPath),
	)

	err := s.server.Start(hostPort)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.Wrap(err, "worker listener")
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
