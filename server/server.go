// Package server builds the shared echo application and runs its listener.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lblod/mu-go-template/config"
)

// The listener address is fixed; deployments remap the port at the container level.
const (
	Host = "0.0.0.0"
	Port = 80
)

// ShutdownTimeout bounds graceful shutdown once the run context is cancelled.
const ShutdownTimeout = 10 * time.Second

// MetricsPath serves Prometheus metrics.
const MetricsPath = "/metrics"

// Config is the listener configuration.
type Config struct {
	Host  string
	Port  int
	Debug bool
}

// NewConfig returns the fixed listener address with debug derived from mode.
func NewConfig(mode string) Config {
	return Config{
		Host:  Host,
		Port:  Port,
		Debug: mode == config.ModeDevelopment,
	}
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NewApp creates the application instance extensions register routes on.
func NewApp(logger *zap.SugaredLogger) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Warnw("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			logger.Infow("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(requestDuration)

	e.GET(MetricsPath, echo.WrapHandler(promhttp.Handler()))
	return e
}

func requestDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		c.Response().Before(func() {
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		})
		return next(c)
	}
}

// Start applies cfg to e and serves until ctx is cancelled or the listener
// fails. Bind errors are returned to the caller.
func Start(ctx context.Context, e *echo.Echo, cfg Config) error {
	e.Debug = cfg.Debug
	return serve(ctx, e, cfg.Addr())
}

func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
