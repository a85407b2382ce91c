package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	markdownLinkExpr = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLExpr      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func stripLinks(input string) string {
	input = markdownLinkExpr.ReplaceAllString(input, "$1")
	return bareURLExpr.ReplaceAllString(input, "")
}

func toPlainText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := strings.Join(strings.Fields(string(output)), " ")
	return stripLinks(plain)
}

// Score runs VADER over headline text and returns a compound score in
// [-1, 1] together with a positive/neutral/negative label. Used as the
// offline scorer when no hosted model can serve.
func Score(text string) (float64, string) {
	score := analyzer.PolarityScores(toPlainText(text)).Compound

	var label string
	switch {
	case score >= 0.20:
		label = "positive"
	case score <= -0.20:
		label = "negative"
	default:
		label = "neutral"
	}

	return score, label
}
