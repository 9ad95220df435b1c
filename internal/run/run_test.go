package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New("episode.wav")

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "episode.wav", r.Input)
	assert.Equal(t, StatusPending, r.GetStatus())
	assert.False(t, r.CreatedAt.IsZero())
}

func TestRun_Transitions(t *testing.T) {
	t.Run("pending to running to completed", func(t *testing.T) {
		r := New("a.wav")

		require.NoError(t, r.Start())
		assert.Equal(t, StatusRunning, r.GetStatus())
		assert.False(t, r.StartedAt.IsZero())

		require.NoError(t, r.Complete())
		assert.Equal(t, StatusCompleted, r.GetStatus())
		assert.False(t, r.CompletedAt.IsZero())
	})

	t.Run("running to failed records message", func(t *testing.T) {
		r := New("a.wav")
		require.NoError(t, r.Start())

		require.NoError(t, r.Fail("engine exploded"))
		assert.Equal(t, StatusFailed, r.GetStatus())
		assert.Equal(t, "engine exploded", r.Error)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		r := New("a.wav")
		require.NoError(t, r.Start())
		require.NoError(t, r.Complete())

		assert.ErrorIs(t, r.Start(), ErrInvalidTransition)
		assert.ErrorIs(t, r.Fail("too late"), ErrInvalidTransition)
	})

	t.Run("cannot complete without running", func(t *testing.T) {
		r := New("a.wav")
		assert.ErrorIs(t, r.Complete(), ErrInvalidTransition)
	})
}

func TestRun_Clone(t *testing.T) {
	r := New("a.wav")
	r.Output = "a.mp3"
	r.Intervals = 3

	clone := r.Clone()
	clone.Output = "changed.mp3"

	assert.Equal(t, "a.mp3", r.Output)
	assert.Equal(t, 3, clone.Intervals)
}
