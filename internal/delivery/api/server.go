// Package api serves the register's JSON API over HTTP/1.1 and h2c.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"pos/config"
	"pos/internal/delivery"
	apimiddleware "pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/router"
	"pos/internal/delivery/api/validator"
	"pos/internal/delivery/api/ws"
	"pos/internal/delivery/middleware"
	"pos/internal/domain/lifecycle"
	"pos/internal/errors"
	"pos/internal/infra/metrics"
	"pos/internal/state"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
	hub    *ws.Hub
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

// NewEcho builds the echo instance with the middleware chain and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics, params router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	// 3. Metrics sees the final status because the logger renders errors
	e.Use(m.Middleware())

	// 4. Logger middleware
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// 5. CORS and body size limit
	allowOrigins := cfg.HTTP.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  allowOrigins,
		ExposeHeaders: []string{"X-Request-Id"},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params).RegisterRoutes(e)

	return e
}

// NewServer wires the API server into the fx lifecycle
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.Metrics, params.RouterParams),
		hub:    params.RouterParams.Hub,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.IsAny(err, http.ErrServerClosed, context.Canceled) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")
	s.hub.Close()

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

// HubParams holds dependencies for the WebSocket hub, injected by Fx.
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Store  *state.Store
}

// NewHub creates the WebSocket hub and subscribes it to state events
func NewHub(params HubParams) *ws.Hub {
	hub := ws.NewHub(params.Logger, params.Cfg.HTTP.AllowOrigins)
	unsubscribe := params.Store.Subscribe("ws", state.AllEvents, hub.OnStateEvent)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			unsubscribe()

			return nil
		},
	})

	return hub
}

// Module provides the router, handlers and WebSocket hub. The server itself
// is provided by the caller so it can join the deliveries group.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	router.Module,
	fx.Provide(NewHub),
)
