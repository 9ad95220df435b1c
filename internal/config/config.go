// Package config provides configuration loading from environment variables.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all environment-derived configuration for the tool.
// Per-run detection parameters come from CLI flags, not from here.
type Config struct {
	// Engine settings
	FFmpegPath  string `env:"SILENCECUT_FFMPEG, default=ffmpeg" json:"ffmpeg_path"`
	FFprobePath string `env:"SILENCECUT_FFPROBE, default=ffprobe" json:"ffprobe_path"`

	// Storage settings
	TempDir string `env:"SILENCECUT_TEMP_DIR" json:"temp_dir,omitempty"`

	// Optional S3 settings for --upload
	S3Bucket           string `env:"SILENCECUT_S3_BUCKET" json:"s3_bucket,omitempty"`
	S3Region           string `env:"SILENCECUT_S3_REGION" json:"s3_region,omitempty"`
	S3Endpoint         string `env:"SILENCECUT_S3_ENDPOINT" json:"s3_endpoint,omitempty"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" json:"-"`     // Masked in JSON
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" json:"-"` // Masked in JSON

	// Logging settings
	LogFormat string `env:"SILENCECUT_LOG_FORMAT, default=text" json:"log_format"` // "json" or "text"
	LogLevel  string `env:"SILENCECUT_LOG_LEVEL, default=info" json:"log_level"`   // "debug", "info", "warn", "error"
}

// S3Enabled returns true if S3 configuration is provided.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// NewLogger creates a structured logger based on the configuration.
// When LogFormat is "json", it outputs JSON logs suitable for piping.
// Otherwise, it outputs human-readable text logs.
func (c *Config) NewLogger() *slog.Logger {
	level := parseLogLevel(c.LogLevel)

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

// String returns a string representation of the config with sensitive values masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{FFmpegPath: %s, FFprobePath: %s, TempDir: %s, S3Bucket: %s, S3Region: %s, LogFormat: %s, LogLevel: %s}",
		c.FFmpegPath,
		c.FFprobePath,
		c.TempDir,
		c.S3Bucket,
		c.S3Region,
		c.LogFormat,
		c.LogLevel,
	)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
