package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"

	"NewsScanner/internal/domain"
)

var (
	analyzerOnce sync.Once
	analyzer     *govader.SentimentIntensityAnalyzer
)

// Ensure loads the VADER lexicon once per process.
func Ensure() {
	analyzerOnce.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})
}

// Score returns the three polarity axes for text; the compound score is dropped.
func Score(text string) domain.SentimentScores {
	Ensure()
	s := analyzer.PolarityScores(text)
	return domain.SentimentScores{
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
	}
}

// axis order decides ties: the first axis holding the maximum wins.
var axisOrder = []struct {
	label domain.Label
	value func(domain.SentimentScores) float64
}{
	{domain.Neutral, func(s domain.SentimentScores) float64 { return s.Neutral }},
	{domain.Positive, func(s domain.SentimentScores) float64 { return s.Positive }},
	{domain.Negative, func(s domain.SentimentScores) float64 { return s.Negative }},
}

// Dominant reduces scores to the label of the highest axis.
func Dominant(s domain.SentimentScores) domain.Label {
	best := axisOrder[0].label
	bestValue := axisOrder[0].value(s)
	for _, axis := range axisOrder[1:] {
		if v := axis.value(s); v > bestValue {
			best, bestValue = axis.label, v
		}
	}
	return best
}
