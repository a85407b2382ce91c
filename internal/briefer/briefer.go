package briefer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"courtside/internal/llm"
	"courtside/internal/models"
)

// FallbackNarrative is the deterministic briefing used when no model can
// serve the run at all. The email still goes out with headlines and games.
const FallbackNarrative = `Today's NBA schedule presents several key matchups worth monitoring. Recent news sentiment and injury reports will significantly impact game outcomes and team performance.

The most critical games today feature teams dealing with various challenges, from injury concerns to momentum shifts based on recent performance. Teams with negative news sentiment may face additional pressure, while those with positive momentum could capitalize on their current form.

Executives should pay close attention to games involving teams with significant injury reports or recent roster changes, as these factors often determine game outcomes more than historical matchups.`

const highlightCount = 3

// Briefer produces the single executive narrative for the run. Exactly one
// call attempt sequence per run; total exhaustion yields FallbackNarrative.
type Briefer struct {
	session *llm.Session
}

// New wires the briefer to the run's model session.
func New(session *llm.Session) *Briefer {
	return &Briefer{session: session}
}

// Brief aggregates enriched headlines and the scoreboard into one prompt and
// returns the narrative plus a degraded flag when the fallback was used.
func (b *Briefer) Brief(ctx context.Context, headlines []models.Headline, games []models.Game) (string, bool) {
	slog.Info("[Briefer] generating executive briefing",
		slog.Int("headlines", len(headlines)),
		slog.Int("games", len(games)))

	out, err := b.session.Complete(ctx, buildPrompt(headlines, games))
	if err != nil {
		slog.Warn("[Briefer] briefing degraded, using fallback narrative",
			slog.String("error", err.Error()))
		return FallbackNarrative, true
	}

	return shapeParagraphs(out), false
}

func buildPrompt(headlines []models.Headline, games []models.Game) string {
	var sb strings.Builder

	sb.WriteString(`Write a 3-paragraph Executive Pregame Briefing for today's NBA games.

Focus on:
1. Injury impacts and how they affect today's matchups
2. High-stakes storylines based on recent news sentiment
3. The most important games to watch and why

`)
	sb.WriteString(newsSection(headlines))
	sb.WriteString(gamesSection(games))
	sb.WriteString(storylineSection(headlines, games))

	sb.WriteString(`
Write a professional, concise 3-paragraph briefing that executives can quickly read. Each paragraph should be 3-5 sentences. Focus on actionable insights about injuries, team momentum, and game importance.`)

	return sb.String()
}

func newsSection(headlines []models.Headline) string {
	if len(headlines) == 0 {
		return ""
	}

	sorted := make([]models.Headline, len(headlines))
	copy(sorted, headlines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sentiment < sorted[j].Sentiment
	})

	n := highlightCount
	if n > len(sorted) {
		n = len(sorted)
	}

	var sb strings.Builder
	sb.WriteString("Top News Headlines:\n\nNegative Sentiment News:\n")
	for _, h := range sorted[:n] {
		sb.WriteString(headlineLine(h))
	}
	sb.WriteString("\nPositive Sentiment News:\n")
	for _, h := range sorted[len(sorted)-n:] {
		sb.WriteString(headlineLine(h))
	}
	return sb.String()
}

func headlineLine(h models.Headline) string {
	team := h.Team
	if team == "" {
		team = "N/A"
	}
	return fmt.Sprintf("- %s (Sentiment: %.2f, Team: %s)\n", h.Title, h.Sentiment, team)
}

func gamesSection(games []models.Game) string {
	if len(games) == 0 {
		return "\nNo games scheduled for today.\n"
	}

	var sb strings.Builder
	sb.WriteString("\nToday's Games:\n")
	for _, g := range games {
		sb.WriteString(fmt.Sprintf("- %s @ %s (Status: %s", g.AwayTeam, g.HomeTeam, g.StatusText))
		if g.Started {
			sb.WriteString(fmt.Sprintf(", Score: %s %d - %s %d", g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore))
		}
		sb.WriteString(")\n")
	}
	return sb.String()
}

// storylineSection matches headline team tags against the teams playing
// today so the model can call out the relevant narratives.
func storylineSection(headlines []models.Headline, games []models.Game) string {
	if len(headlines) == 0 || len(games) == 0 {
		return ""
	}

	playing := make(map[string]struct{}, len(games)*2)
	for _, g := range games {
		playing[g.HomeTeam] = struct{}{}
		playing[g.AwayTeam] = struct{}{}
	}

	var sb strings.Builder
	sb.WriteString("\nRelevant Storylines (News matching teams playing today):\n")

	matched := false
	for _, h := range headlines {
		if h.Team == "" {
			continue
		}
		if _, ok := playing[h.Team]; !ok {
			continue
		}
		matched = true
		sb.WriteString(fmt.Sprintf("- %s (Team: %s, Sentiment: %.2f)\n", h.Title, h.Team, h.Sentiment))
	}
	if !matched {
		sb.WriteString("- No direct news matches for teams playing today.\n")
	}
	return sb.String()
}

// shapeParagraphs coerces a model response into at most three paragraphs.
func shapeParagraphs(text string) string {
	paragraphs := splitNonEmpty(text, "\n\n", 0)
	if len(paragraphs) < 3 {
		paragraphs = splitNonEmpty(text, "\n", 50)
	}

	if len(paragraphs) >= 3 {
		return strings.Join(paragraphs[:3], "\n\n")
	}
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n\n")
	}
	return strings.TrimSpace(text)
}

func splitNonEmpty(text, sep string, minLen int) []string {
	var out []string
	for _, p := range strings.Split(text, sep) {
		p = strings.TrimSpace(p)
		if p == "" || len(p) <= minLen {
			continue
		}
		out = append(out, p)
	}
	return out
}
