package silence

// Segment is a contiguous span of the pre-edit timeline to retain.
type Segment struct {
	// Start is the beginning of the kept span in seconds.
	Start float64
	// End is the end of the kept span in seconds.
	End float64
}

// Duration returns the length of the segment in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Plan computes the ordered keep-segments for excising iv from a stream of
// totalDuration seconds. The result has zero segments (the whole file is
// silent), one segment (silence at the very start or very end), or two
// segments in head-then-tail order (interior silence requiring concatenation).
//
// Comparisons are exact; the boundaries mirror what the detector reported.
func Plan(iv Interval, totalDuration float64) []Segment {
	var segments []Segment

	if iv.Start > 0 {
		segments = append(segments, Segment{Start: 0, End: iv.Start})
	}
	if iv.End < totalDuration {
		segments = append(segments, Segment{Start: iv.End, End: totalDuration})
	}

	return segments
}
