package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("has run prefix", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(Generate(), "run-"))
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := Generate()
			assert.False(t, seen[id], "duplicate ID: %s", id)
			seen[id] = true
		}
	})
}
