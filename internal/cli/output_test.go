package cli

import (
	"bufio"
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestResolveOutputPath(t *testing.T) {
	logger := discardLogger()

	t.Run("defaults next to the input with the target extension", func(t *testing.T) {
		got := resolveOutputPath("/data/talk.wav", "", false, ".mp3", logger)
		assert.Equal(t, "/data/talk.mp3", got)
	})

	t.Run("input without extension gains one", func(t *testing.T) {
		got := resolveOutputPath("/data/talk", "", false, ".mp4", logger)
		assert.Equal(t, "/data/talk.mp4", got)
	})

	t.Run("single input uses -o as the output file", func(t *testing.T) {
		got := resolveOutputPath("/data/talk.wav", "/out/clean.mp3", false, ".mp3", logger)
		assert.Equal(t, "/out/clean.mp3", got)
	})

	t.Run("multiple inputs use -o as a directory", func(t *testing.T) {
		dir := t.TempDir()
		got := resolveOutputPath("/data/talk.wav", dir, true, ".mp3", logger)
		assert.Equal(t, filepath.Join(dir, "talk.mp3"), got)
	})

	t.Run("multiple inputs with a non-directory -o fall back to the default", func(t *testing.T) {
		got := resolveOutputPath("/data/talk.wav", "/missing/dir", true, ".mp3", logger)
		assert.Equal(t, "/data/talk.mp3", got)
	})
}

func TestConfirmOverwrite(t *testing.T) {
	existing := func(t *testing.T) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "out.mp3")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		return path
	}

	t.Run("missing file needs no confirmation", func(t *testing.T) {
		ok, err := confirmOverwrite(filepath.Join(t.TempDir(), "new.mp3"), false,
			answers(""), &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("--yes skips the prompt", func(t *testing.T) {
		ok, err := confirmOverwrite(existing(t), true, answers(""), &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("prompts and accepts y", func(t *testing.T) {
		var out bytes.Buffer
		ok, err := confirmOverwrite(existing(t), false, answers("y\n"), &out)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, out.String(), "Overwrite?")
	})

	t.Run("accepts yes", func(t *testing.T) {
		ok, err := confirmOverwrite(existing(t), false, answers("yes\n"), &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("defaults to no", func(t *testing.T) {
		for _, answer := range []string{"n\n", "\n", "", "nope\n"} {
			ok, err := confirmOverwrite(existing(t), false, answers(answer), &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, ok, "answer %q", answer)
		}
	})

	t.Run("consecutive prompts consume consecutive answers", func(t *testing.T) {
		in := answers("y\nn\ny\n")
		var out bytes.Buffer

		for i, want := range []bool{true, false, true} {
			ok, err := confirmOverwrite(existing(t), false, in, &out)
			require.NoError(t, err)
			assert.Equal(t, want, ok, "answer %d", i+1)
		}
	})
}
