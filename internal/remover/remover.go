// Package remover drives sequential silence excision: detecting intervals on
// a media file and applying one destructive edit per interval to an
// exclusively-owned working file.
package remover

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nobucshirai/silencecut/internal/media"
	"github.com/nobucshirai/silencecut/internal/silence"
	"github.com/nobucshirai/silencecut/internal/storage"
)

// Remover owns the detect-plan-edit cycle for one input at a time. Multiple
// inputs may be processed concurrently by independent calls; each working
// file is owned exclusively by its call.
type Remover struct {
	engine media.Engine
	store  storage.Storage
	logger *slog.Logger
}

// New creates a Remover.
func New(engine media.Engine, store storage.Storage, logger *slog.Logger) *Remover {
	if logger == nil {
		logger = slog.Default()
	}
	return &Remover{
		engine: engine,
		store:  store,
		logger: logger,
	}
}

// DetectIntervals probes path, runs silence detection on it and returns the
// normalized interval list in latest-first order. Detector anomalies
// (unbalanced start/end markers) are logged, never silently dropped.
func (r *Remover) DetectIntervals(ctx context.Context, path string, opts Options) ([]silence.Interval, error) {
	duration, err := r.engine.ProbeDuration(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("probe duration of %s: %w", path, err)
	}

	raw, err := r.engine.DetectSilence(ctx, path, opts.NoiseThreshold, opts.MinSilenceDuration)
	if err != nil {
		return nil, fmt.Errorf("detect silence in %s: %w", path, err)
	}

	events := silence.ParseEvents(raw)
	intervals, report := silence.Normalize(events, opts.Margin, duration)
	if report.SwallowedByMargin > 0 {
		r.logger.Debug("intervals swallowed by margin",
			slog.String("file", path),
			slog.Int("count", report.SwallowedByMargin),
		)
	}
	if report.Anomalous() {
		r.logger.Warn("detector emitted unbalanced silence markers",
			slog.String("file", path),
			slog.Int("orphan_starts", report.OrphanStarts),
			slog.Int("orphan_ends", report.OrphanEnds),
			slog.Int("synthesized_ends", report.SynthesizedEnds),
		)
	}

	r.logger.Info("silence detection finished",
		slog.String("file", path),
		slog.Float64("duration", duration),
		slog.Int("intervals", len(intervals)),
	)

	return intervals, nil
}

// Execute applies the intervals to workingFile one destructive edit at a
// time. The list must be latest-first: removing a later interval never
// shifts the timestamps of an earlier one still waiting to be applied, so
// each iteration's plan stays valid against the current file.
//
// The total duration is re-probed every iteration because each edit changes
// the file's length. After a successful edit the engine's artifact replaces
// the working file by rename, so a partially-written file is never visible
// under the working name. Any engine failure aborts the whole input.
func (r *Remover) Execute(ctx context.Context, workingFile string, intervals []silence.Interval, layout media.StreamLayout) error {
	if err := silence.Validate(intervals); err != nil {
		return fmt.Errorf("interval list for %s: %w", workingFile, err)
	}

	for _, iv := range intervals {
		// Cancellation is honored at the iteration boundary, between
		// durably applying one edit and planning the next.
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("excision cancelled: %w", err)
		}

		duration, err := r.engine.ProbeDuration(ctx, workingFile)
		if err != nil {
			return fmt.Errorf("probe duration of %s: %w", workingFile, err)
		}

		plan := silence.Plan(iv, duration)
		r.logger.Info("removing silence",
			slog.String("file", workingFile),
			slog.Float64("start", iv.Start),
			slog.Float64("end", iv.End),
			slog.Int("kept_segments", len(plan)),
		)

		req := media.BuildEditRequest(plan, layout)
		artifact, err := r.engine.ApplyEdit(ctx, workingFile, req)
		if err != nil {
			return fmt.Errorf("apply edit to %s: %w", workingFile, err)
		}

		if err := os.Rename(artifact, workingFile); err != nil {
			_ = os.Remove(artifact)
			return fmt.Errorf("install edited artifact over %s: %w", workingFile, err)
		}
	}

	return nil
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// paths are on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src) // #nosec G304 - src is produced by trusted internal code
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 - dst is resolved by trusted internal code
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("copy to destination: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}

	return os.Remove(src)
}
