package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nobucshirai/silencecut/internal/bootstrap"
	"github.com/nobucshirai/silencecut/internal/remover"
	"github.com/nobucshirai/silencecut/internal/run"
	"github.com/nobucshirai/silencecut/internal/storage"
)

// processFunc removes silence from one input and returns the number of
// excised intervals.
type processFunc func(ctx context.Context, input, output string, opts remover.Options) (int, error)

// processInputs drives the per-input loop shared by the audio and video
// commands. Each input is processed by its own sequential run; a fatal
// failure aborts only that input and already-completed outputs stay in place.
// After the loop the per-input outcomes are read back from the run
// repository and printed as a summary.
func processInputs(cmd *cobra.Command, deps *bootstrap.Dependencies, logger *slog.Logger,
	inputs []string, flags *runFlags, outputExt string, process processFunc) error {

	ctx := cmd.Context()
	opts := remover.Options{
		NoiseThreshold:     flags.noiseThreshold,
		MinSilenceDuration: flags.minSilence,
		Margin:             flags.margin,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	// One buffered reader for the whole invocation so consecutive overwrite
	// prompts consume consecutive answers.
	stdin := bufio.NewReader(cmd.InOrStdin())

	multiple := len(inputs) > 1
	failed := 0
	runIDs := make([]string, 0, len(inputs))

	for _, input := range inputs {
		r := run.New(input)
		r.Output = resolveOutputPath(input, flags.output, multiple, outputExt, logger)
		runIDs = append(runIDs, r.ID)
		_ = deps.Runs.Save(ctx, r)

		ok, err := confirmOverwrite(r.Output, flags.yes, stdin, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("skipping input, output exists",
				slog.String("input", input),
				slog.String("output", r.Output),
			)
			_ = r.Fail("output exists, overwrite declined")
			_ = deps.Runs.Save(ctx, r)
			failed++
			continue
		}

		_ = r.Start()
		logger.Info("processing input",
			slog.String("run_id", r.ID),
			slog.String("input", input),
			slog.String("output", r.Output),
		)

		count, err := process(ctx, input, r.Output, opts)
		if err != nil {
			logger.Error("processing failed",
				slog.String("run_id", r.ID),
				slog.String("input", input),
				slog.String("error", err.Error()),
			)
			_ = r.Fail(err.Error())
			_ = deps.Runs.Save(ctx, r)
			failed++
			continue
		}
		r.Intervals = count

		if flags.upload {
			url, err := uploadArtifact(ctx, deps.Store, r.Output)
			if err != nil {
				logger.Error("upload failed",
					slog.String("run_id", r.ID),
					slog.String("output", r.Output),
					slog.String("error", err.Error()),
				)
				_ = r.Fail(err.Error())
				_ = deps.Runs.Save(ctx, r)
				failed++
				continue
			}
			r.UploadURL = url
			logger.Info("artifact uploaded", slog.String("url", url))
		}

		_ = r.Complete()
		_ = deps.Runs.Save(ctx, r)
		logger.Info("input processed",
			slog.String("run_id", r.ID),
			slog.String("output", r.Output),
			slog.Int("intervals_removed", count),
		)
	}

	printRunSummary(ctx, cmd.OutOrStdout(), deps.Runs, runIDs)

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

// printRunSummary reads the recorded runs back from the repository, in input
// order, and prints one outcome line per input.
func printRunSummary(ctx context.Context, out io.Writer, runs run.Repository, runIDs []string) {
	for _, id := range runIDs {
		r, err := runs.FindByID(ctx, id)
		if err != nil {
			continue
		}

		switch r.GetStatus() {
		case run.StatusCompleted:
			fmt.Fprintf(out, "%s: %s -> %s (%d intervals removed)\n",
				r.Status, r.Input, r.Output, r.Intervals)
			if r.UploadURL != "" {
				fmt.Fprintf(out, "  uploaded: %s\n", r.UploadURL)
			}
		case run.StatusFailed:
			fmt.Fprintf(out, "%s: %s (%s)\n", r.Status, r.Input, r.Error)
		default:
			fmt.Fprintf(out, "%s: %s\n", r.Status, r.Input)
		}
	}
}

// uploadArtifact publishes the finished output under its base name.
func uploadArtifact(ctx context.Context, store storage.Storage, path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 - path is resolved by this tool
	if err != nil {
		return "", fmt.Errorf("open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	return store.Upload(ctx, filepath.Base(path), f)
}
