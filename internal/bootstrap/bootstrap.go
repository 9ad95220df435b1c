// Package bootstrap provides dependency initialization for the silencecut CLI.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/nobucshirai/silencecut/internal/config"
	"github.com/nobucshirai/silencecut/internal/media"
	"github.com/nobucshirai/silencecut/internal/remover"
	"github.com/nobucshirai/silencecut/internal/run"
	"github.com/nobucshirai/silencecut/internal/storage"
)

// Dependencies holds all initialized dependencies for the CLI commands.
type Dependencies struct {
	Engine  media.Engine
	Store   storage.Storage
	Remover *remover.Remover
	Runs    run.Repository
}

// NewDependencies creates and initializes all dependencies for the application.
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	store, err := initStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	engine := media.NewFFmpegEngine(cfg.FFmpegPath, cfg.FFprobePath)

	return &Dependencies{
		Engine:  engine,
		Store:   store,
		Remover: remover.New(engine, store, logger),
		Runs:    run.NewMemoryRepository(),
	}, nil
}

// initStorage creates the appropriate storage backend based on configuration.
func initStorage(cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	if cfg.S3Enabled() {
		s3Cfg := storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		}
		s3Store, err := storage.NewS3Storage(cfg.TempDir, s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("create S3 storage: %w", err)
		}
		logger.Info("S3 delivery configured",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region),
		)
		return s3Store, nil
	}

	localStore, err := storage.NewLocalStorage(cfg.TempDir)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	logger.Debug("local storage configured",
		slog.String("temp_dir", localStore.TempDir()),
	)
	return localStore, nil
}
