package nlp

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// maxEditDistance is the fuzzy matching threshold for a single token.
const maxEditDistance = 2

// NormalizeToken maps a single word or phrase onto the canonical vocabulary.
// Resolution order: exact synonym, exact vocabulary entry, then the closest
// vocabulary tag or synonym key within edit distance 2. Only a strictly
// smaller distance replaces the current best, so ties resolve to the earliest
// candidate in vocabulary order.
func NormalizeToken(token string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}

	if canonical, ok := synonyms[token]; ok {
		return canonical, true
	}
	for _, tag := range tags {
		if tag == token {
			return tag, true
		}
	}

	best := ""
	bestDist := maxEditDistance + 1
	for _, tag := range tags {
		if d := levenshtein.ComputeDistance(token, tag); d < bestDist {
			bestDist = d
			best = tag
		}
	}
	for _, key := range synonymKeys {
		if d := levenshtein.ComputeDistance(token, key); d < bestDist {
			bestDist = d
			best = synonyms[key]
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// ExtractTags pulls every recognizable topic tag out of free text: multi-word
// synonym phrases are matched as substrings first, then each token is
// normalized individually, and the union is expanded one level through the
// related-tag graph. Pure and deterministic.
func ExtractTags(text string) []string {
	lower := strings.ToLower(text)

	var matched []string
	for _, key := range synonymKeys {
		if strings.Contains(key, " ") && strings.Contains(lower, key) {
			matched = append(matched, synonyms[key])
		}
	}

	for _, token := range tokenize(lower) {
		if canonical, ok := NormalizeToken(token); ok {
			matched = append(matched, canonical)
		}
	}

	expanded := append([]string(nil), matched...)
	for _, tag := range matched {
		expanded = append(expanded, relatedTags[tag]...)
	}

	return dedupe(expanded)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
