package classify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gunal77/web-hackathon/classify"
)

func TestShortSummary(t *testing.T) {
	t.Run("short text is cleaned only", func(t *testing.T) {
		assert.Equal(t, "Broken pipe near school", classify.ShortSummary("  Broken   pipe\nnear school ", 80))
	})

	t.Run("cuts at word boundary", func(t *testing.T) {
		text := "aaaa bbbb cccc dddd eeee"
		// first 12 runes are "aaaa bbbb cc", last space at 9 > 7.2
		assert.Equal(t, "aaaa bbbb...", classify.ShortSummary(text, 12))
	})

	t.Run("hard cut when space is too early", func(t *testing.T) {
		text := "ab cdefghijklmnop"
		assert.Equal(t, "ab cdefghij...", classify.ShortSummary(text, 11))
	})

	t.Run("default length", func(t *testing.T) {
		text := strings.Repeat("x", 120)
		assert.Equal(t, strings.Repeat("x", 80)+"...", classify.ShortSummary(text, 0))
	})
}
