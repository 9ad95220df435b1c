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

// NewExtractCommand builds the subcommand that extracts a video's audio
// track as MP3.
func NewExtractCommand(deps *bootstrap.Dependencies, logger *slog.Logger) *cobra.Command {
	var (
		output string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "extract <input>",
		Short: "Extract the audio track of a video as MP3",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if output == "" {
				output = strings.TrimSuffix(input, filepath.Ext(input)) + "_extracted.mp3"
			}

			ok, err := confirmOverwrite(output, yes, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				logger.Warn("extraction aborted, output exists", slog.String("output", output))
				return nil
			}

			logger.Info("extracting audio",
				slog.String("input", input),
				slog.String("output", output),
			)
			if err := deps.Engine.Convert(cmd.Context(), input, output,
				"-vn", "-ab", "192k", "-ar", "44100"); err != nil {
				return fmt.Errorf("extract audio: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Audio extracted to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Output MP3 filename (default: <input>_extracted.mp3)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Overwrite an existing output file without asking")

	return cmd
}
