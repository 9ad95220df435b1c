package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nobucshirai/silencecut/internal/bootstrap"
	"github.com/nobucshirai/silencecut/internal/remover"
)

// NewAudioCommand builds the subcommand that removes silence from audio files.
func NewAudioCommand(deps *bootstrap.Dependencies, logger *slog.Logger) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "audio <input>...",
		Short: "Remove silent passages from audio files",
		Long: `Detect silent passages in each input audio file and write a copy with the
silence removed. Inputs are decoded to WAV for editing and encoded to MP3.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return processInputs(cmd, deps, logger, args, flags, ".mp3",
				func(ctx context.Context, input, output string, opts remover.Options) (int, error) {
					return deps.Remover.ProcessAudio(ctx, input, output, opts)
				})
		},
	}

	addRunFlags(cmd, flags)
	return cmd
}
