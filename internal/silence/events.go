// Package silence turns ffmpeg silencedetect output into an ordered excision
// plan: parsing detector events, pairing them into margin-adjusted intervals,
// and computing the segments of the timeline to keep when one interval is
// removed.
package silence

import (
	"bufio"
	"strconv"
	"strings"
)

// EventKind distinguishes the two marker types emitted by the detector.
type EventKind int

const (
	// EventStart marks the beginning of a detected silence.
	EventStart EventKind = iota
	// EventEnd marks the end of a detected silence.
	EventEnd
)

// Event is a single tagged detector emission on the media timeline.
type Event struct {
	// Kind is the marker type.
	Kind EventKind
	// At is the timestamp in seconds.
	At float64
}

const (
	startMarker = "silence_start:"
	endMarker   = "silence_end:"
)

// ParseEvents scans line-oriented silencedetect diagnostic output for
// silence_start and silence_end markers and returns the tagged events in
// emission order. Lines without either marker are ignored, as is a marker
// whose following token does not parse as a float.
func ParseEvents(output string) []Event {
	var events []Event

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if at, ok := markerValue(line, startMarker); ok {
			events = append(events, Event{Kind: EventStart, At: at})
		}
		if at, ok := markerValue(line, endMarker); ok {
			events = append(events, Event{Kind: EventEnd, At: at})
		}
	}

	return events
}

// markerValue extracts the first float token following marker in line.
func markerValue(line, marker string) (float64, bool) {
	_, rest, found := strings.Cut(line, marker)
	if !found {
		return 0, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, false
	}
	val, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
