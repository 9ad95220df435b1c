package silence

import (
	"errors"
	"fmt"
)

// ErrInvalidIntervals is returned when an interval list violates the
// latest-first, non-overlapping contract. This indicates an internal bug
// rather than bad user input.
var ErrInvalidIntervals = errors.New("invalid interval list")

// Interval is a half-open silent time range on the media timeline.
// Immutable once constructed.
type Interval struct {
	// Start is the beginning of the silence in seconds.
	Start float64
	// End is the end of the silence in seconds.
	End float64
}

// Duration returns the length of the interval in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// PairingReport summarizes what Normalize did with the event stream:
// pairing anomalies (unbalanced markers) plus diagnostic counts of
// intervals dropped by the margin policy.
type PairingReport struct {
	// OrphanEnds counts end markers with no preceding unmatched start.
	OrphanEnds int
	// OrphanStarts counts start markers that could not be paired and
	// could not be closed at total duration.
	OrphanStarts int
	// SynthesizedEnds counts trailing starts closed at total duration
	// (silence running to end of file).
	SynthesizedEnds int
	// SwallowedByMargin counts intervals omitted because the margin
	// reached or passed their end. Expected behavior, not an anomaly.
	SwallowedByMargin int
}

// Anomalous reports whether the event stream violated the expected
// start/end alternation.
func (r PairingReport) Anomalous() bool {
	return r.OrphanEnds > 0 || r.OrphanStarts > 0 || r.SynthesizedEnds > 0
}

// Normalize pairs detector events into intervals, applies the margin policy
// and orders the result latest-first (descending by start time).
//
// Pairing is a small state machine: each start is matched with the next end.
// A trailing start without an end is closed at totalDuration when the silence
// plausibly runs to end of file; otherwise it is dropped and counted.
//
// Margin policy: a silence beginning after timeline zero has margin seconds
// added to its start so the attack of the following sound is not clipped. A
// silence starting exactly at zero has no preceding content to protect and
// gets no margin. An interval fully swallowed by its margin is omitted.
//
// The latest-first ordering is mandatory: intervals are excised by destructive
// in-place edits, and removing a later interval never shifts the timestamps
// of an earlier one still waiting to be applied.
func Normalize(events []Event, margin, totalDuration float64) ([]Interval, PairingReport) {
	var (
		intervals []Interval
		report    PairingReport
		openStart float64
		hasOpen   bool
	)

	appendInterval := func(start, end float64) {
		if start != 0 {
			start += margin
		}
		if start >= end {
			// Margin swallowed the whole silence; nothing left to excise.
			report.SwallowedByMargin++
			return
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}

	for _, ev := range events {
		switch ev.Kind {
		case EventStart:
			if hasOpen {
				report.OrphanStarts++
				continue
			}
			openStart = ev.At
			hasOpen = true
		case EventEnd:
			if !hasOpen {
				report.OrphanEnds++
				continue
			}
			appendInterval(openStart, ev.At)
			hasOpen = false
		}
	}

	if hasOpen {
		if totalDuration > openStart {
			appendInterval(openStart, totalDuration)
			report.SynthesizedEnds++
		} else {
			report.OrphanStarts++
		}
	}

	// Reverse chronological order into latest-first.
	for i, j := 0, len(intervals)-1; i < j; i, j = i+1, j-1 {
		intervals[i], intervals[j] = intervals[j], intervals[i]
	}

	return intervals, report
}

// Validate checks that intervals form a well-formed latest-first list:
// every interval has End >= Start and each interval starts no earlier than
// the next one ends. Returns ErrInvalidIntervals otherwise.
func Validate(intervals []Interval) error {
	for i, iv := range intervals {
		if iv.End < iv.Start {
			return fmt.Errorf("%w: interval %d has end %.3f before start %.3f",
				ErrInvalidIntervals, i, iv.End, iv.Start)
		}
		if i+1 < len(intervals) && iv.Start < intervals[i+1].End {
			return fmt.Errorf("%w: interval %d overlaps interval %d",
				ErrInvalidIntervals, i, i+1)
		}
	}
	return nil
}
