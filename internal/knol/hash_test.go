package knol

import (
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got := Normalize("  What is HTMX? \r\n", "A library for\r\nAJAX.")
	assert.Equal(t, "what is htmx?\na library for\najax.", got)
}

func TestHash(t *testing.T) {
	t.Run("matches sha256 of the normalized form", func(t *testing.T) {
		want := fmt.Sprintf("%x", sha256.Sum256([]byte("q\na")))
		assert.Equal(t, want, Hash("Q", "A"))
	})

	t.Run("normalization produces same hash", func(t *testing.T) {
		assert.Equal(t, Hash("  what is go? ", "A language."), Hash("What Is Go?", "a language."))
	})

	t.Run("different cards have different hashes", func(t *testing.T) {
		assert.NotEqual(t, Hash("Card 1", "x"), Hash("Card 2", "x"))
	})

	t.Run("field boundary matters", func(t *testing.T) {
		assert.NotEqual(t, Hash("ab", "c"), Hash("a", "bc"))
	})
}
