package analysis

import "strings"

// SalientSentences picks the '.'-separated fragments of text that contain
// every word of q, deduplicated in first-occurrence order. Matching is by
// substring, so partial words count.
func SalientSentences(q Quadgram, text string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, fragment := range strings.Split(text, ".") {
		if !containsAll(fragment, q[:]) {
			continue
		}
		if _, dup := seen[fragment]; dup {
			continue
		}
		seen[fragment] = struct{}{}
		out = append(out, fragment)
	}
	return out
}

// JoinSentences renders salient fragments as a single string.
func JoinSentences(sentences []string) string {
	return strings.Join(sentences, ". ")
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}
