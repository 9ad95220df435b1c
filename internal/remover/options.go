package remover

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Options control silence detection and excision for one run.
type Options struct {
	// NoiseThreshold is the volume in dB below which audio counts as
	// silence. Numeric value, with or without a dB suffix.
	NoiseThreshold string `validate:"required"`
	// MinSilenceDuration is the minimum silence length in seconds for
	// the detector to report an interval.
	MinSilenceDuration float64 `validate:"gt=0"`
	// Margin is the number of seconds retained after a nonzero silence
	// start so the onset of the following sound is not clipped.
	Margin float64 `validate:"gte=0"`
}

// DefaultOptions returns the default detection parameters.
func DefaultOptions() Options {
	return Options{
		NoiseThreshold:     "-50",
		MinSilenceDuration: 2.0,
		Margin:             1.0,
	}
}

// Validate checks the options against their constraints.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
