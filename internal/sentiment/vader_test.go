package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLabels(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
	}{
		{
			name:  "positive headline",
			text:  "Dominant win keeps the streak alive, fans thrilled by a brilliant fourth quarter",
			label: "positive",
		},
		{
			name:  "negative headline",
			text:  "Devastating injury ruins the season, terrible news for a struggling roster",
			label: "negative",
		},
		{
			name:  "neutral headline",
			text:  "The game tips off at seven on Tuesday",
			label: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, label := Score(tt.text)
			assert.Equal(t, tt.label, label)
			assert.GreaterOrEqual(t, score, -1.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestStripLinks(t *testing.T) {
	assert.Equal(t, "great recap", stripLinks("[great recap](https://example.com/story)"))
	assert.Equal(t, "read more at ", stripLinks("read more at https://example.com/story"))
}

func TestToPlainTextCollapsesWhitespace(t *testing.T) {
	plain := toPlainText("Big  news\n\ntonight")
	assert.Contains(t, plain, "Big news")
	assert.Contains(t, plain, "tonight")
}
