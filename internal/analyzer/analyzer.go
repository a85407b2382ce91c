package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"courtside/internal/llm"
	"courtside/internal/models"
	"courtside/internal/sentiment"
)

const (
	maxSummaryLen = 500

	degradedSummary = "Summary unavailable: no model could serve this headline."
)

var (
	sentimentExpr = regexp.MustCompile(`(?i)SENTIMENT:\s*(-?\d+\.?\d*)`)
	summaryExpr   = regexp.MustCompile(`(?is)SUMMARY:\s*(.+)`)
	numberExpr    = regexp.MustCompile(`-?\d+\.?\d*`)
)

// Analyzer enriches each headline with a sentiment score and a summary via
// the shared model session. Every failure degrades the single headline, never
// the run.
type Analyzer struct {
	session *llm.Session
	// localFallback switches degraded headlines to an offline VADER score
	// instead of the neutral 0.0 sentinel.
	localFallback bool
}

// New wires the analyzer to the run's model session.
func New(session *llm.Session, localFallback bool) *Analyzer {
	return &Analyzer{session: session, localFallback: localFallback}
}

// AnalyzeAll enriches headlines in place and returns them in input order.
// Headlines are processed independently; an empty input performs no calls.
func (a *Analyzer) AnalyzeAll(ctx context.Context, headlines []models.Headline) []models.Headline {
	if len(headlines) == 0 {
		slog.Warn("[Analyzer] no headlines to analyze")
		return headlines
	}

	slog.Info("[Analyzer] analyzing headlines", slog.Int("count", len(headlines)))
	for i := range headlines {
		headlines[i] = a.analyze(ctx, headlines[i])
	}
	return headlines
}

func (a *Analyzer) analyze(ctx context.Context, h models.Headline) models.Headline {
	if h.Title == "" {
		slog.Warn("[Analyzer] empty headline, assigning neutral sentiment")
		return a.degrade(h)
	}

	out, err := a.session.Complete(ctx, buildPrompt(h))
	if err != nil {
		slog.Warn("[Analyzer] headline analysis degraded",
			slog.String("headline", h.Title),
			slog.String("error", err.Error()))
		return a.degrade(h)
	}

	h.Sentiment, h.Summary = parseResponse(out)
	h.Analysis = models.AnalysisOK
	return h
}

// degrade fills the documented neutral defaults, or an offline VADER read
// when the local fallback is enabled.
func (a *Analyzer) degrade(h models.Headline) models.Headline {
	h.Sentiment = 0.0
	h.Summary = degradedSummary
	h.Analysis = models.AnalysisDegraded

	if a.localFallback && h.Title != "" {
		score, label := sentiment.Score(h.Title + ". " + h.Description)
		h.Sentiment = score
		h.Summary = fmt.Sprintf("Offline %s read of the headline; model summary unavailable.", label)
	}
	return h
}

func buildPrompt(h models.Headline) string {
	content := h.Description
	if len(h.ArticleBody) > 50 {
		content = h.ArticleBody
	}

	return fmt.Sprintf(`Analyze this NBA news article and provide:
1. A sentiment score from -1.0 (bad news/injuries) to 1.0 (good news/hype) as a float
2. A detailed 5-sentence summary of what this news is about, including key details, context, and implications

Headline: %s
Article Content: %s

Format your response exactly as:
SENTIMENT: [score]
SUMMARY: [5-sentence summary covering key details, context, and implications]`, h.Title, content)
}

// parseResponse extracts the SENTIMENT/SUMMARY pair from a model response,
// clamping the score to [-1, 1] and capping the summary length. Malformed
// responses fall back to a neutral score and whatever number appears first.
func parseResponse(out string) (float64, string) {
	score := 0.0
	if m := sentimentExpr.FindStringSubmatch(out); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			score = clamp(v)
		}
	} else if m := numberExpr.FindString(out); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			score = clamp(v)
		}
	}

	summary := "No summary available"
	if m := summaryExpr.FindStringSubmatch(out); m != nil {
		summary = strings.TrimSpace(m[1])
	}
	if len(summary) > maxSummaryLen {
		summary = summary[:maxSummaryLen] + "..."
	}

	return score, summary
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}
