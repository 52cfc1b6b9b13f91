package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/lblod/mu-go-template/bootstrap"
	"github.com/lblod/mu-go-template/config"
	"github.com/lblod/mu-go-template/helpers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the configured extension and start the HTTP server on 0.0.0.0:80",
	RunE:  runServe,
}

// runBootstrap is replaced in tests so the listener is never bound.
var runBootstrap = (*bootstrap.Bootstrap).Run

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadAppConfig()

	zl := helpers.NewLogger(cfg.Debug())
	defer func() { _ = zl.Sync() }()
	logger := zl.Sugar()

	figure.NewFigure("mu-template", "standard", true).Print()

	b, err := bootstrap.New(cfg, logger)
	if err != nil {
		logger.Fatalw("Bootstrap failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runBootstrap(b, ctx); err != nil {
		logger.Fatalw("Server failed", "error", err)
	}
	logger.Info("Server stopped")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
