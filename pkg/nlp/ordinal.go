package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var digitPattern = regexp.MustCompile(`\d+`)

// ParseOrdinal resolves an item reference like "tell me about #2" or "the
// first one" to a zero-based index. Numerals take precedence over ordinal
// words.
func ParseOrdinal(text string) (int, bool) {
	if m := digitPattern.FindString(text); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n - 1, true
	}
	switch {
	case strings.Contains(text, "first"):
		return 0, true
	case strings.Contains(text, "second"):
		return 1, true
	case strings.Contains(text, "third"):
		return 2, true
	}
	return 0, false
}
