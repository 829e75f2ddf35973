package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultTopWords is how many words MostCommonWords reports by default.
const DefaultTopWords = 9

// DefaultExcludedWords are domain noise words dropped alongside stopwords.
var DefaultExcludedWords = []string{"guardian", "said"}

var wordExpr = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// InsufficientTextError is returned when a body is too short for 4-gram analysis.
type InsufficientTextError struct {
	Tokens int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("insufficient text: %d significant tokens, need %d", e.Tokens, quadgramSize)
}

// Tokenizer splits text into significant words.
type Tokenizer struct {
	excluded map[string]struct{}
}

// NewTokenizer builds a tokenizer; nil excluded falls back to DefaultExcludedWords.
func NewTokenizer(excluded []string) *Tokenizer {
	if excluded == nil {
		excluded = DefaultExcludedWords
	}
	set := make(map[string]struct{}, len(excluded))
	for _, w := range excluded {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	EnsureStopwords()
	return &Tokenizer{excluded: set}
}

// Tokenize returns word tokens minus stopwords and excluded words.
// Tokens keep their original case.
func (t *Tokenizer) Tokenize(text string) []string {
	raw := wordExpr.FindAllString(text, -1)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		lower := strings.ToLower(w)
		if IsStopword(lower) {
			continue
		}
		if _, ok := t.excluded[lower]; ok {
			continue
		}
		words = append(words, w)
	}
	return words
}

// WordCount is a word with its frequency.
type WordCount struct {
	Word  string
	Count int
}

// MostCommonWords ranks words by descending count; ties keep first-occurrence order.
func MostCommonWords(words []string, n int) []WordCount {
	index := map[string]int{}
	var counts []WordCount
	for _, w := range words {
		if i, ok := index[w]; ok {
			counts[i].Count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, WordCount{Word: w, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

const quadgramSize = 4

// Quadgram is four consecutive significant words.
type Quadgram [quadgramSize]string

// TopQuadgram returns the most frequent window of four words.
func TopQuadgram(words []string) (Quadgram, error) {
	if len(words) < quadgramSize {
		return Quadgram{}, &InsufficientTextError{Tokens: len(words)}
	}

	var (
		best      Quadgram
		bestCount int
		counts    = map[Quadgram]int{}
	)
	// The first window to reach a count wins ties, matching first-occurrence order.
	order := make([]Quadgram, 0, len(words)-quadgramSize+1)
	for i := 0; i+quadgramSize <= len(words); i++ {
		var q Quadgram
		copy(q[:], words[i:i+quadgramSize])
		if counts[q] == 0 {
			order = append(order, q)
		}
		counts[q]++
	}
	for _, q := range order {
		if counts[q] > bestCount {
			best, bestCount = q, counts[q]
		}
	}
	return best, nil
}
