// Package api serves the EduSync REST API.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"edusync/config"
	"edusync/internal/delivery"
	apimiddleware "edusync/internal/delivery/api/middleware"
	"edusync/internal/delivery/api/router"
	"edusync/internal/delivery/api/validator"
	deliverycontext "edusync/internal/delivery/context"
	"edusync/internal/delivery/middleware"
	"edusync/internal/domain/lifecycle"
	"edusync/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	port        int
	idleTimeout time.Duration
	logger      *slog.Logger
	server      *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server over the route table and registers its
// shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	routes := router.NewRouter(params.RouterParams)

	srv := &apiServer{
		port:        params.Cfg.HTTP.Port,
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		server:      newEcho(params.Cfg, params.Logger, routes.RegisterRoutes),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho wires the middleware chain in order: panic recovery, request id,
// access log, CORS, body limit. The request id must precede the access log.
func newEcho(cfg *config.Config, logger *slog.Logger, register func(*echo.Echo)) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(corsConfig(cfg.HTTP.AllowOrigins)),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	register(e)

	return e
}

// corsConfig allows the configured origins, or any origin when none are set.
func corsConfig(allowOrigins []string) echomiddleware.CORSConfig {
	cfg := echomiddleware.DefaultCORSConfig
	if len(allowOrigins) > 0 {
		cfg.AllowOrigins = allowOrigins
	}
	cfg.AllowHeaders = []string{
		echo.HeaderOrigin,
		echo.HeaderContentType,
		echo.HeaderAccept,
		echo.HeaderAuthorization,
		deliverycontext.HeaderXRequestID,
	}
	cfg.ExposeHeaders = []string{deliverycontext.HeaderXRequestID}

	return cfg
}

// Serve speaks HTTP/1.1 and cleartext HTTP/2 on the configured port.
func (s *apiServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	err := s.server.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.idleTimeout})
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.Wrap(err, "api listener")
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
