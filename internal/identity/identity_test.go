package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("generates distinct identifiers", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := New()
			assert.False(t, seen[id], "duplicate identifier %s", id)
			seen[id] = true
		}
	})

	t.Run("generated identifiers are valid", func(t *testing.T) {
		assert.True(t, IsValid(New()))
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("22658002-9b1e-48ed-bc4e-4aaf382bb647"))
	assert.False(t, IsValid("Jane Doe"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("not-a-uuid"))
}
