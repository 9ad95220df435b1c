package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoInputs is returned when Concat is called without input paths.
var ErrNoInputs = errors.New("no input paths provided")

// FFmpegEngine implements Engine using the ffmpeg and ffprobe CLIs.
type FFmpegEngine struct {
	ffmpegPath  string
	ffprobePath string
}

// NewFFmpegEngine creates a new FFmpegEngine. Empty paths default to
// "ffmpeg" and "ffprobe" resolved via PATH.
func NewFFmpegEngine(ffmpegPath, ffprobePath string) *FFmpegEngine {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &FFmpegEngine{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath}
}

// Compile-time check that FFmpegEngine implements Engine.
var _ Engine = (*FFmpegEngine)(nil)

// EngineError represents a failed engine invocation, including the arguments
// used and the tool's stderr output.
type EngineError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine error: %v\nargs: %v\nstderr: %s", e.Err, e.Args, e.Stderr)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ProbeDuration returns the total duration of path in seconds via ffprobe.
// A duration ffprobe cannot report in parseable form degrades to 0.0 without
// error; downstream planning tolerates that by keeping no tail segment.
func (e *FFmpegEngine) ProbeDuration(ctx context.Context, path string) (float64, error) {
	// #nosec G204 - ffprobePath is set by the application, not user input
	cmd := exec.CommandContext(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("ffprobe cancelled: %w", ctx.Err())
		}
		return 0, &EngineError{Args: cmd.Args[1:], Stderr: stderr.String(), Err: err}
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	if err != nil {
		return 0, nil
	}
	return duration, nil
}

// DetectSilence runs the silencedetect filter against path and returns the
// raw diagnostic text. ffmpeg emits the markers on stderr.
func (e *FFmpegEngine) DetectSilence(ctx context.Context, path, noiseThreshold string, minSilence float64) (string, error) {
	filter := fmt.Sprintf("silencedetect=noise=%s:d=%s",
		NormalizeNoiseThreshold(noiseThreshold),
		strconv.FormatFloat(minSilence, 'f', -1, 64),
	)

	// #nosec G204 - ffmpegPath is set by the application, not user input
	cmd := exec.CommandContext(ctx, e.ffmpegPath,
		"-hide_banner",
		"-i", path,
		"-af", filter,
		"-f", "null", "-",
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
		}
		return "", &EngineError{Args: cmd.Args[1:], Stderr: stderr.String(), Err: err}
	}

	return stderr.String(), nil
}

// NormalizeNoiseThreshold ensures the decibel unit suffix is present exactly
// once on a silencedetect noise threshold: appended when absent, never doubled.
func NormalizeNoiseThreshold(threshold string) string {
	threshold = strings.TrimSpace(threshold)
	if strings.HasSuffix(threshold, "dB") {
		return threshold
	}
	return threshold + "dB"
}

// ApplyEdit runs the request's filter graph against path and writes a sibling
// artifact. On failure any partial artifact is removed before returning.
func (e *FFmpegEngine) ApplyEdit(ctx context.Context, path string, req EditRequest) (string, error) {
	if req.Duplicate {
		return e.Duplicate(ctx, path)
	}

	out := artifactPath(path)
	args := []string{"-y", "-i", path, "-filter_complex", req.FilterComplex}
	for _, label := range req.OutputLabels {
		args = append(args, "-map", "["+label+"]")
	}
	args = append(args, out)

	if err := e.runFFmpeg(ctx, args); err != nil {
		_ = os.Remove(out)
		return "", err
	}
	return out, nil
}

// Duplicate writes a verbatim copy of path as a sibling artifact.
func (e *FFmpegEngine) Duplicate(_ context.Context, path string) (string, error) {
	out := artifactPath(path)

	src, err := os.Open(path) // #nosec G304 - path is provided by trusted internal code
	if err != nil {
		return "", fmt.Errorf("open source file: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(out) // #nosec G304 - sibling of a trusted path
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(out)
		return "", fmt.Errorf("copy artifact: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(out)
		return "", fmt.Errorf("close artifact: %w", err)
	}

	return out, nil
}

// artifactPath derives the sibling output path for a destructive edit, so
// the final rename stays on one filesystem.
func artifactPath(path string) string {
	return path + ".nosilence" + filepath.Ext(path)
}

// Convert transcodes src to dst, with extra ffmpeg args between input and
// output (codec, sample rate, stream selection).
func (e *FFmpegEngine) Convert(ctx context.Context, src, dst string, args ...string) error {
	full := append([]string{"-y", "-i", src}, args...)
	full = append(full, dst)
	return e.runFFmpeg(ctx, full)
}

// Concat joins inputs into output using the concat demuxer. It tries stream
// copy first and falls back to re-encoding with libx264/aac when the inputs'
// codecs are incompatible. A single input is copied verbatim.
func (e *FFmpegEngine) Concat(ctx context.Context, inputs []string, output string) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}

	if len(inputs) == 1 {
		return e.Convert(ctx, inputs[0], output, "-c", "copy")
	}

	listFile, err := writeConcatList(inputs)
	if err != nil {
		return fmt.Errorf("create concat list: %w", err)
	}
	defer func() { _ = os.Remove(listFile) }()

	copyArgs := []string{"-y", "-f", "concat", "-safe", "0", "-i", listFile, "-c", "copy", output}
	if err := e.runFFmpeg(ctx, copyArgs); err == nil {
		return nil
	}

	reencodeArgs := []string{
		"-y", "-f", "concat", "-safe", "0", "-i", listFile,
		"-c:v", "libx264", "-preset", "fast", "-crf", "23",
		"-c:a", "aac", "-b:a", "128k",
		output,
	}
	return e.runFFmpeg(ctx, reencodeArgs)
}

// writeConcatList creates a temporary file list in concat demuxer format.
func writeConcatList(inputs []string) (string, error) {
	f, err := os.CreateTemp("", "silencecut-concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = f.Close() }()

	for _, path := range inputs {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("get absolute path for %s: %w", path, err)
		}
		escapedPath := strings.ReplaceAll(absPath, "'", "'\\''")
		if _, err := fmt.Fprintf(f, "file '%s'\n", escapedPath); err != nil {
			return "", fmt.Errorf("write to concat list: %w", err)
		}
	}

	return f.Name(), nil
}

// runFFmpeg executes ffmpeg with the given arguments and wraps failures in
// an EngineError carrying stderr.
func (e *FFmpegEngine) runFFmpeg(ctx context.Context, args []string) error {
	// #nosec G204 - ffmpegPath is set by the application, not user input
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
		}
		return &EngineError{Args: args, Stderr: stderr.String(), Err: err}
	}

	return nil
}
