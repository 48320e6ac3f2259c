package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Sentiment
	}{
		{"positive keywords", "This event was great and wonderful", model.SentimentPositive},
		{"negative keywords", "This was terrible and awful", model.SentimentNegative},
		{"no keywords", "It happened on Tuesday", model.SentimentNeutral},
		{"empty text", "", model.SentimentNeutral},
		{"tie resolves neutral", "good but bad", model.SentimentNeutral},
		{"case insensitive", "GREAT session, LOVED it", model.SentimentPositive},
		{"substring containment", "I bought a new Saddle", model.SentimentNegative},
		{"repeated keyword counts once", "bad bad bad but good and great", model.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	// Live preview and submission-time classification must agree.
	text := "The workshop was amazing but the venue was poor"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}
