package silence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("pairs events latest-first with margin on nonzero starts", func(t *testing.T) {
		events := []Event{
			{Kind: EventStart, At: 2.0},
			{Kind: EventEnd, At: 5.0},
			{Kind: EventStart, At: 10.0},
			{Kind: EventEnd, At: 12.0},
		}

		intervals, report := Normalize(events, 1.0, 15.0)

		require.Len(t, intervals, 2)
		assert.Equal(t, Interval{Start: 11.0, End: 12.0}, intervals[0])
		assert.Equal(t, Interval{Start: 3.0, End: 5.0}, intervals[1])
		assert.False(t, report.Anomalous())
	})

	t.Run("silence at timeline zero gets no margin", func(t *testing.T) {
		events := []Event{
			{Kind: EventStart, At: 0.0},
			{Kind: EventEnd, At: 4.0},
		}

		intervals, _ := Normalize(events, 1.0, 10.0)

		require.Len(t, intervals, 1)
		assert.Equal(t, Interval{Start: 0.0, End: 4.0}, intervals[0])
	})

	t.Run("trailing start is closed at total duration", func(t *testing.T) {
		events := []Event{
			{Kind: EventStart, At: 2.0},
			{Kind: EventEnd, At: 5.0},
			{Kind: EventStart, At: 50.0},
		}

		intervals, report := Normalize(events, 1.0, 60.0)

		require.Len(t, intervals, 2)
		assert.Equal(t, Interval{Start: 51.0, End: 60.0}, intervals[0])
		assert.Equal(t, Interval{Start: 3.0, End: 5.0}, intervals[1])
		assert.Equal(t, 1, report.SynthesizedEnds)
	})

	t.Run("trailing start is dropped when duration is unknown", func(t *testing.T) {
		events := []Event{{Kind: EventStart, At: 50.0}}

		intervals, report := Normalize(events, 1.0, 0.0)

		assert.Empty(t, intervals)
		assert.Equal(t, 1, report.OrphanStarts)
	})

	t.Run("end without start is counted and ignored", func(t *testing.T) {
		events := []Event{
			{Kind: EventEnd, At: 3.0},
			{Kind: EventStart, At: 6.0},
			{Kind: EventEnd, At: 9.0},
		}

		intervals, report := Normalize(events, 0.5, 20.0)

		require.Len(t, intervals, 1)
		assert.Equal(t, Interval{Start: 6.5, End: 9.0}, intervals[0])
		assert.Equal(t, 1, report.OrphanEnds)
	})

	t.Run("interval swallowed by margin is omitted", func(t *testing.T) {
		events := []Event{
			{Kind: EventStart, At: 4.0},
			{Kind: EventEnd, At: 4.5},
		}

		intervals, report := Normalize(events, 1.0, 10.0)

		assert.Empty(t, intervals)
		assert.False(t, report.Anomalous())
		assert.Equal(t, 1, report.SwallowedByMargin)
	})

	t.Run("result is non-overlapping and descending", func(t *testing.T) {
		events := []Event{
			{Kind: EventStart, At: 2.0},
			{Kind: EventEnd, At: 5.0},
			{Kind: EventStart, At: 10.0},
			{Kind: EventEnd, At: 14.0},
			{Kind: EventStart, At: 20.0},
			{Kind: EventEnd, At: 25.0},
		}

		intervals, _ := Normalize(events, 1.0, 30.0)

		require.Len(t, intervals, 3)
		for i := 0; i+1 < len(intervals); i++ {
			assert.GreaterOrEqual(t, intervals[i].Start, intervals[i+1].End)
		}
		assert.NoError(t, Validate(intervals))
	})
}

func TestValidate(t *testing.T) {
	t.Run("accepts well-formed latest-first list", func(t *testing.T) {
		intervals := []Interval{
			{Start: 11.0, End: 12.0},
			{Start: 3.0, End: 5.0},
		}
		assert.NoError(t, Validate(intervals))
	})

	t.Run("rejects end before start", func(t *testing.T) {
		err := Validate([]Interval{{Start: 5.0, End: 3.0}})
		assert.ErrorIs(t, err, ErrInvalidIntervals)
	})

	t.Run("rejects overlapping intervals", func(t *testing.T) {
		intervals := []Interval{
			{Start: 4.0, End: 12.0},
			{Start: 3.0, End: 5.0},
		}
		err := Validate(intervals)
		assert.ErrorIs(t, err, ErrInvalidIntervals)
	})

	t.Run("accepts empty list", func(t *testing.T) {
		assert.NoError(t, Validate(nil))
	})
}
