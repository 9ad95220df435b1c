// Package media provides the transcoding engine port and its ffmpeg/ffprobe
// implementation, plus the filter-graph construction for excision edits.
package media

import "context"

// StreamLayout selects which streams an edit request operates on.
type StreamLayout int

const (
	// AudioOnly edits the audio stream alone.
	AudioOnly StreamLayout = iota
	// AudioVideo edits audio and video streams in lockstep so A/V sync
	// is preserved across trims and concatenation.
	AudioVideo
)

// EditRequest is a declarative trim/concat request against a single input.
// It is built from an excision plan and used exactly once.
type EditRequest struct {
	// Duplicate requests a verbatim copy of the input (empty plan: the
	// whole file was silence and the policy is a deliberate no-op).
	Duplicate bool
	// FilterComplex is the ffmpeg filter graph to apply.
	FilterComplex string
	// OutputLabels are the filter graph output pads to map, in order.
	OutputLabels []string
}

// Engine is the media transcoding engine port. Implementations invoke an
// external tool; every call blocks until the tool completes and honors ctx
// cancellation.
type Engine interface {
	// ProbeDuration returns the total duration of the file in seconds.
	// An unparseable duration degrades to 0.0 without error; a failed
	// probe invocation is an error and fatal for the input.
	ProbeDuration(ctx context.Context, path string) (float64, error)

	// DetectSilence runs silence detection and returns the raw diagnostic
	// text containing silence_start/silence_end markers. The threshold is
	// a decibel value with or without a dB suffix; the implementation
	// normalizes it to carry the suffix exactly once.
	DetectSilence(ctx context.Context, path, noiseThreshold string, minSilence float64) (string, error)

	// ApplyEdit performs the request against path and writes a new sibling
	// artifact, returning its path. It fails atomically: either a complete
	// artifact or an error with no artifact left behind.
	ApplyEdit(ctx context.Context, path string, req EditRequest) (string, error)

	// Duplicate writes a verbatim copy of path as a sibling artifact and
	// returns its path.
	Duplicate(ctx context.Context, path string) (string, error)

	// Convert transcodes src to dst. Extra args are inserted between the
	// input and the output, e.g. codec and sample-rate selection.
	Convert(ctx context.Context, src, dst string, args ...string) error

	// Concat joins inputs into output, trying stream copy first and
	// falling back to re-encoding.
	Concat(ctx context.Context, inputs []string, output string) error
}
