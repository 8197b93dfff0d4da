package srn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	t.Run("FirstH1Wins", func(t *testing.T) {
		content := []byte("# Go Concurrency\n\nSome text.\n\n# Second Heading\n")
		assert.Equal(t, "Go Concurrency", Title(content))
	})

	t.Run("H2FallbackWhenNoH1", func(t *testing.T) {
		content := []byte("intro paragraph\n\n## Patterns\n\nmore text\n")
		assert.Equal(t, "Patterns", Title(content))
	})

	t.Run("H1PreferredOverEarlierH2", func(t *testing.T) {
		content := []byte("## Subtopic\n\n# Main Topic\n")
		assert.Equal(t, "Main Topic", Title(content))
	})

	t.Run("InlineMarkupFlattened", func(t *testing.T) {
		content := []byte("# Using `context` in *Go*\n")
		assert.Equal(t, "Using context in Go", Title(content))
	})

	t.Run("NoHeadings", func(t *testing.T) {
		assert.Equal(t, "", Title([]byte("just a paragraph\n")))
	})

	t.Run("EmptyContent", func(t *testing.T) {
		assert.Equal(t, "", Title(nil))
	})
}
