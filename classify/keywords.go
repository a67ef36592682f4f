package classify

import (
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// keywordSet matches lower-cased text against a fixed list of substrings in a
// single pass. The underlying matcher keeps per-call state, so calls are
// serialised.
type keywordSet struct {
	mu       sync.Mutex
	keywords []string
	matcher  *ahocorasick.Matcher
}

func newKeywordSet(keywords ...string) *keywordSet {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = normalize(kw)
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}
	set := &keywordSet{keywords: normalized}
	if len(normalized) > 0 {
		set.matcher = ahocorasick.NewStringMatcher(normalized)
	}
	return set
}

// Keywords returns a copy of the set's keywords
func (k *keywordSet) Keywords() []string {
	out := make([]string, len(k.keywords))
	copy(out, k.keywords)
	return out
}

// Matches returns the keywords found in text, which must already be normalised
func (k *keywordSet) Matches(text string) []string {
	if k.matcher == nil || text == "" {
		return nil
	}

	k.mu.Lock()
	hits := k.matcher.Match([]byte(text))
	k.mu.Unlock()

	found := make([]string, 0, len(hits))
	for _, idx := range hits {
		if idx < len(k.keywords) {
			found = append(found, k.keywords[idx])
		}
	}
	return found
}

// Any reports whether any keyword occurs in text
func (k *keywordSet) Any(text string) bool {
	return len(k.Matches(text)) > 0
}

func normalize(text string) string {
	return strings.ToLower(text)
}
