package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SILENCECUT_FFMPEG",
		"SILENCECUT_FFPROBE",
		"SILENCECUT_TEMP_DIR",
		"SILENCECUT_S3_BUCKET",
		"SILENCECUT_S3_REGION",
		"SILENCECUT_S3_ENDPOINT",
		"AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY",
		"SILENCECUT_LOG_FORMAT",
		"SILENCECUT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "ffprobe", cfg.FFprobePath)
	assert.Empty(t, cfg.TempDir)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.S3Enabled())
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SILENCECUT_FFMPEG", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("SILENCECUT_TEMP_DIR", "/custom/temp")
	t.Setenv("SILENCECUT_S3_BUCKET", "my-bucket")
	t.Setenv("SILENCECUT_S3_REGION", "us-east-1")
	t.Setenv("SILENCECUT_LOG_FORMAT", "json")
	t.Setenv("SILENCECUT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "/custom/temp", cfg.TempDir)
	assert.True(t, cfg.S3Enabled())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestS3Enabled(t *testing.T) {
	t.Run("requires both bucket and region", func(t *testing.T) {
		cfg := &Config{S3Bucket: "my-bucket"}
		assert.False(t, cfg.S3Enabled())

		cfg.S3Region = "eu-west-1"
		assert.True(t, cfg.S3Enabled())
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("creates logger for each format", func(t *testing.T) {
		for _, format := range []string{"text", "json", "TEXT", ""} {
			cfg := &Config{LogFormat: format, LogLevel: "info"}
			logger := cfg.NewLogger()
			require.NotNil(t, logger)
		}
	})

	t.Run("debug level enables debug logging", func(t *testing.T) {
		cfg := &Config{LogFormat: "text", LogLevel: "debug"}
		logger := cfg.NewLogger()
		assert.True(t, logger.Enabled(nil, slog.LevelDebug))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := &Config{LogFormat: "text", LogLevel: "verbose"}
		logger := cfg.NewLogger()
		assert.False(t, logger.Enabled(nil, slog.LevelDebug))
		assert.True(t, logger.Enabled(nil, slog.LevelInfo))
	})
}

func TestString_MasksCredentials(t *testing.T) {
	cfg := &Config{
		FFmpegPath:         "ffmpeg",
		AWSAccessKeyID:     "AKIAEXAMPLE",
		AWSSecretAccessKey: "super-secret",
	}

	s := cfg.String()
	assert.NotContains(t, s, "AKIAEXAMPLE")
	assert.NotContains(t, s, "super-secret")
}
