package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nobucshirai/silencecut/internal/bootstrap"
	"github.com/nobucshirai/silencecut/internal/remover"
)

// NewVideoCommand builds the subcommand that removes silence from video files.
func NewVideoCommand(deps *bootstrap.Dependencies, logger *slog.Logger) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "video <input>...",
		Short: "Remove silent passages from video files",
		Long: `Detect silent passages on the audio track of each input video and cut the
matching ranges from both streams, keeping audio and video in sync.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return processInputs(cmd, deps, logger, args, flags, ".mp4",
				func(ctx context.Context, input, output string, opts remover.Options) (int, error) {
					return deps.Remover.ProcessVideo(ctx, input, output, opts)
				})
		},
	}

	addRunFlags(cmd, flags)
	return cmd
}
