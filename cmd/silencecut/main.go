package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nobucshirai/silencecut/internal/bootstrap"
	"github.com/nobucshirai/silencecut/internal/cli"
	"github.com/nobucshirai/silencecut/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", slog.String("config", cfg.String()))

	deps, err := bootstrap.NewDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(deps, logger)
	return rootCmd.ExecuteContext(ctx)
}
