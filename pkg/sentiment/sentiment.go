// Package sentiment classifies free text as positive, neutral or negative by
// counting keyword hits. Matching is substring containment, not word-boundary
// aware: "sad" inside "Saddle" counts. Ties, including zero hits on both
// sides, resolve to neutral.
package sentiment

import (
	"strings"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

var positiveWords = []string{
	"great", "excellent", "amazing", "wonderful", "fantastic",
	"good", "love", "perfect", "awesome", "brilliant",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "hate",
	"worst", "disappointing", "poor", "sad", "angry",
}

// Classify is deterministic and pure. The feedback workflow calls it once at
// submission time; callers rendering a live preview call the same function, so
// both paths agree for identical input.
func Classify(text string) model.Sentiment {
	lower := strings.ToLower(text)

	positive := countHits(lower, positiveWords)
	negative := countHits(lower, negativeWords)

	switch {
	case positive > negative:
		return model.SentimentPositive
	case negative > positive:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// countHits counts each keyword at most once, however often it occurs.
func countHits(text string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			hits++
		}
	}
	return hits
}
