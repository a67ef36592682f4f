package classify

import "strings"

// DefaultSummaryLength is the rune budget used by list views
const DefaultSummaryLength = 80

// ShortSummary collapses whitespace in text and truncates it to maxLen runes,
// preferring to cut at a word boundary when one falls in the last 40% of the
// budget. Truncated summaries end in "...".
func ShortSummary(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSummaryLength
	}
	cleaned := strings.Join(strings.Fields(text), " ")
	runes := []rune(cleaned)
	if len(runes) <= maxLen {
		return cleaned
	}

	truncated := runes[:maxLen]
	lastSpace := -1
	for i := len(truncated) - 1; i >= 0; i-- {
		if truncated[i] == ' ' {
			lastSpace = i
			break
		}
	}
	if float64(lastSpace) > float64(maxLen)*0.6 {
		return string(truncated[:lastSpace]) + "..."
	}
	return string(truncated) + "..."
}
