// Package cli wires the cobra command tree around the silence-removal
// pipelines: argument parsing, output naming, overwrite confirmation and the
// per-input processing loop.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nobucshirai/silencecut/internal/bootstrap"
)

// NewRootCmd builds the silencecut command tree.
func NewRootCmd(deps *bootstrap.Dependencies, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "silencecut",
		Short: "Remove silent passages from audio and video files",
		Long: `silencecut detects silent passages with ffmpeg's silencedetect filter and
removes them, keeping the remaining content in order and audio/video in sync.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(NewAudioCommand(deps, logger))
	rootCmd.AddCommand(NewVideoCommand(deps, logger))
	rootCmd.AddCommand(NewMergeCommand(deps, logger))
	rootCmd.AddCommand(NewExtractCommand(deps, logger))
	rootCmd.AddCommand(NewTrimCommand(deps, logger))

	return rootCmd
}

// runFlags are the per-run flags shared by the audio and video commands.
type runFlags struct {
	output         string
	noiseThreshold string
	minSilence     float64
	margin         float64
	yes            bool
	upload         bool
}

// addRunFlags registers the shared detection and output flags on cmd.
func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "",
		"Output filename for a single input, or an output directory for multiple inputs")
	f.StringVar(&flags.noiseThreshold, "noise-threshold", "-50",
		"Noise threshold for silence detection in dB (numeric value only, e.g. -50)")
	f.Float64Var(&flags.minSilence, "min-silence-duration", 2.0,
		"Minimum duration in seconds to consider as silence")
	f.Float64Var(&flags.margin, "margin", 1.0,
		"Margin in seconds added to nonzero silence starts")
	f.BoolVarP(&flags.yes, "yes", "y", false,
		"Overwrite existing output files without asking")
	f.BoolVar(&flags.upload, "upload", false,
		"Upload final artifacts to the configured S3 bucket")
}
