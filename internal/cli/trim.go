package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nobucshirai/silencecut/internal/bootstrap"
)

// NewTrimCommand builds the subcommand that cuts a segment off the start of
// a media file without re-encoding.
func NewTrimCommand(deps *bootstrap.Dependencies, logger *slog.Logger) *cobra.Command {
	var (
		output   string
		duration string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "trim <input>",
		Short: "Extract a segment from the beginning of a media file",
		Long: `Stream-copy the first part of a media file into a new output. The cut
lands on the nearest keyframe since no re-encoding happens.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if output == "" {
				ext := filepath.Ext(input)
				output = strings.TrimSuffix(input, ext) + "_segment" + ext
			}

			ok, err := confirmOverwrite(output, yes, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				logger.Warn("trim aborted, output exists", slog.String("output", output))
				return nil
			}

			logger.Info("trimming segment",
				slog.String("input", input),
				slog.String("output", output),
				slog.String("duration", duration),
			)
			if err := deps.Engine.Convert(cmd.Context(), input, output,
				"-t", duration, "-c", "copy"); err != nil {
				return fmt.Errorf("trim segment: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Segment written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Output filename (default: <input>_segment<ext>)")
	cmd.Flags().StringVarP(&duration, "duration", "d", "00:01:00",
		"Length of the segment to keep, as seconds or HH:MM:SS")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Overwrite an existing output file without asking")

	return cmd
}
