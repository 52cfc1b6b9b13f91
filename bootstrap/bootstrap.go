// Package bootstrap assembles the service in a fixed order: the shared
// context first, then the configured extension, then the HTTP listener.
//
// Usage:
//
//	b, err := bootstrap.New(config.LoadAppConfig(), logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := b.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lblod/mu-go-template/config"
	"github.com/lblod/mu-go-template/core/shared"
	"github.com/lblod/mu-go-template/escape"
	"github.com/lblod/mu-go-template/extension"
	"github.com/lblod/mu-go-template/helpers"
	"github.com/lblod/mu-go-template/server"
)

// startServer is replaced in tests to observe what Run hands to the listener.
var startServer = server.Start

// Bootstrap owns the shared context for the lifetime of the process.
type Bootstrap struct {
	Config  *config.Config
	Context *shared.Context
	Logger  *zap.SugaredLogger

	loaded  bool
	loadErr error
}

// New builds the application instance and the shared context. It does no I/O.
func New(cfg *config.Config, logger *zap.SugaredLogger) (*Bootstrap, error) {
	if cfg == nil {
		return nil, errors.New("bootstrap: config is required")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	app := server.NewApp(logger)
	ctx, err := shared.New(app, helpers.New(logger), escape.Sparql)
	if err != nil {
		return nil, fmt.Errorf("create shared context: %w", err)
	}

	return &Bootstrap{
		Config:  cfg,
		Context: ctx,
		Logger:  logger,
	}, nil
}

// LoadExtension loads the extension selected by the configured entrypoint.
// It runs at most once. A failure is logged by the loader and returned for
// inspection; the caller is expected to carry on in a degraded state.
func (b *Bootstrap) LoadExtension() error {
	if b.loaded {
		return b.loadErr
	}
	b.loaded = true

	b.Logger.Infow("Loading app code",
		"entrypoint", b.Config.Entrypoint,
		"module", extension.ModulePath(b.Config.Entrypoint))

	b.loadErr = extension.Load(b.Context, b.Config.Entrypoint)
	if b.loadErr != nil {
		b.Logger.Warnw("Starting in degraded mode", "error", b.loadErr)
	}
	return b.loadErr
}

// Degraded reports whether the extension failed to load.
func (b *Bootstrap) Degraded() bool {
	return b.loaded && b.loadErr != nil
}

// ServerConfig returns the listener configuration derived from MODE.
func (b *Bootstrap) ServerConfig() server.Config {
	return server.NewConfig(b.Config.Mode)
}

// Run loads the extension if that has not happened yet, then serves until
// ctx is cancelled. Listener errors are returned and are fatal to the caller.
func (b *Bootstrap) Run(ctx context.Context) error {
	_ = b.LoadExtension()

	cfg := b.ServerConfig()
	b.Logger.Infow("Starting server", "addr", cfg.Addr(), "debug", cfg.Debug, "degraded", b.Degraded())
	if err := startServer(ctx, b.Context.App(), cfg); err != nil {
		return fmt.Errorf("start server on %s: %w", cfg.Addr(), err)
	}
	return nil
}
