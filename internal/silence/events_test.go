package silence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEvents(t *testing.T) {
	t.Run("extracts tagged events in emission order", func(t *testing.T) {
		output := "[silencedetect @ 0x55d] silence_start: 2.0\n" +
			"[silencedetect @ 0x55d] silence_end: 5.0 | silence_duration: 3.0\n" +
			"[silencedetect @ 0x55d] silence_start: 10.0\n" +
			"[silencedetect @ 0x55d] silence_end: 12.0 | silence_duration: 2.0\n"

		events := ParseEvents(output)

		assert.Equal(t, []Event{
			{Kind: EventStart, At: 2.0},
			{Kind: EventEnd, At: 5.0},
			{Kind: EventStart, At: 10.0},
			{Kind: EventEnd, At: 12.0},
		}, events)
	})

	t.Run("ignores unrelated diagnostic lines", func(t *testing.T) {
		output := "Input #0, wav, from 'episode.wav':\n" +
			"  Duration: 00:01:30.00, bitrate: 1411 kb/s\n" +
			"frame=  100 fps=0.0 q=-0.0 size=N/A\n" +
			"silence_start: 4.25\n"

		events := ParseEvents(output)

		assert.Equal(t, []Event{{Kind: EventStart, At: 4.25}}, events)
	})

	t.Run("skips markers without a parseable float", func(t *testing.T) {
		output := "silence_start: n/a\nsilence_end: 7.5\n"

		events := ParseEvents(output)

		assert.Equal(t, []Event{{Kind: EventEnd, At: 7.5}}, events)
	})

	t.Run("empty output yields no events", func(t *testing.T) {
		assert.Empty(t, ParseEvents(""))
	})
}
