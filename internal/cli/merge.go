package cli

import (
	"bufio"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nobucshirai/silencecut/internal/bootstrap"
)

// NewMergeCommand builds the subcommand that concatenates media files.
func NewMergeCommand(deps *bootstrap.Dependencies, logger *slog.Logger) *cobra.Command {
	var (
		output string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "merge <input>...",
		Short: "Concatenate media files into one output",
		Long: `Concatenate the given media files in order into a single output. Stream
copy is tried first; when the inputs do not share codecs the output is
re-encoded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("merge requires an output file, use -o")
			}

			ok, err := confirmOverwrite(output, yes, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				logger.Warn("merge aborted, output exists", slog.String("output", output))
				return nil
			}

			logger.Info("merging inputs",
				slog.Int("inputs", len(args)),
				slog.String("output", output),
			)
			if err := deps.Engine.Concat(cmd.Context(), args, output); err != nil {
				return fmt.Errorf("merge: %w", err)
			}

			logger.Info("merge finished", slog.String("output", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output filename (required)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite an existing output file without asking")

	return cmd
}
