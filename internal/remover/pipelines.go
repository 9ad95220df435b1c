package remover

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nobucshirai/silencecut/internal/media"
	"github.com/nobucshirai/silencecut/internal/run/id"
)

// ProcessAudio removes silence from an audio input and writes the result to
// outputPath. The input is first converted to a WAV working file (PCM 16-bit,
// 44100 Hz), silence is excised there, and the cleaned WAV is encoded to the
// output format. Returns the number of intervals excised.
func (r *Remover) ProcessAudio(ctx context.Context, inputPath, outputPath string, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	runID := id.Generate()
	wavPath := r.store.WorkPath(runID + ".wav")
	defer func() { _ = r.store.Cleanup(context.WithoutCancel(ctx), []string{wavPath}) }()

	r.logger.Info("converting input to WAV",
		slog.String("input", inputPath),
		slog.String("working_file", wavPath),
	)
	if err := r.engine.Convert(ctx, inputPath, wavPath, "-acodec", "pcm_s16le", "-ar", "44100"); err != nil {
		return 0, fmt.Errorf("convert %s to WAV: %w", inputPath, err)
	}

	intervals, err := r.DetectIntervals(ctx, wavPath, opts)
	if err != nil {
		return 0, err
	}

	if err := r.Execute(ctx, wavPath, intervals, media.AudioOnly); err != nil {
		return 0, err
	}

	r.logger.Info("encoding cleaned audio",
		slog.String("working_file", wavPath),
		slog.String("output", outputPath),
	)
	if err := r.engine.Convert(ctx, wavPath, outputPath); err != nil {
		return 0, fmt.Errorf("encode %s: %w", outputPath, err)
	}

	return len(intervals), nil
}

// ProcessVideo removes silence from a video input and writes the result to
// outputPath. The input is stream-copied to an MP4 working file, its audio
// track is extracted to a WAV for detection, and each interval is excised
// from the working file with video and audio trimmed in lockstep. Returns
// the number of intervals excised.
func (r *Remover) ProcessVideo(ctx context.Context, inputPath, outputPath string, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	runID := id.Generate()
	workPath := r.store.WorkPath(runID + ".mp4")
	wavPath := r.store.WorkPath(runID + "_audio.wav")
	defer func() {
		_ = r.store.Cleanup(context.WithoutCancel(ctx), []string{workPath, wavPath})
	}()

	r.logger.Info("copying input to working file",
		slog.String("input", inputPath),
		slog.String("working_file", workPath),
	)
	if err := r.engine.Convert(ctx, inputPath, workPath, "-c", "copy"); err != nil {
		return 0, fmt.Errorf("copy %s to working file: %w", inputPath, err)
	}

	if err := r.engine.Convert(ctx, workPath, wavPath, "-vn", "-acodec", "pcm_s16le", "-ar", "44100"); err != nil {
		return 0, fmt.Errorf("extract audio from %s: %w", workPath, err)
	}

	intervals, err := r.DetectIntervals(ctx, wavPath, opts)
	if err != nil {
		return 0, err
	}
	_ = r.store.Cleanup(ctx, []string{wavPath})

	if err := r.Execute(ctx, workPath, intervals, media.AudioVideo); err != nil {
		return 0, err
	}

	if err := moveFile(workPath, outputPath); err != nil {
		return 0, fmt.Errorf("install output %s: %w", outputPath, err)
	}

	return len(intervals), nil
}
