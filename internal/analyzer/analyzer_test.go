package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/llm"
	"courtside/internal/models"
)

type fakeChat struct {
	probeErr  error
	completes int
	prompts   []string
	complete  func(model, prompt string) (string, error)
}

func (f *fakeChat) Probe(context.Context, string) error { return f.probeErr }

func (f *fakeChat) Complete(_ context.Context, model, prompt string) (string, error) {
	f.completes++
	f.prompts = append(f.prompts, prompt)
	if f.complete != nil {
		return f.complete(model, prompt)
	}
	return "SENTIMENT: 0.8\nSUMMARY: A big comeback win.", nil
}

func testSession(chat *fakeChat) *llm.Session {
	return llm.NewSession(chat, []llm.ModelCandidate{{ID: "model-a", RPM: 30, RPD: 1000}})
}

func TestAnalyzeAllEnrichesHeadlines(t *testing.T) {
	chat := &fakeChat{}
	a := New(testSession(chat), false)

	out := a.AnalyzeAll(context.Background(), []models.Headline{
		{Title: "Lakers stun Celtics in overtime"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, 0.8, out[0].Sentiment)
	assert.Equal(t, "A big comeback win.", out[0].Summary)
	assert.Equal(t, models.AnalysisOK, out[0].Analysis)
}

func TestAnalyzeAllEmptyInputMakesNoCalls(t *testing.T) {
	chat := &fakeChat{}
	a := New(testSession(chat), false)

	out := a.AnalyzeAll(context.Background(), nil)

	assert.Empty(t, out)
	assert.Zero(t, chat.completes)
}

func TestAnalyzeAllDegradesWhenCatalogExhausted(t *testing.T) {
	chat := &fakeChat{probeErr: errors.New("invalid api key")}
	a := New(testSession(chat), false)

	headlines := []models.Headline{
		{Title: "First headline"},
		{Title: "Second headline"},
		{Title: "Third headline"},
	}
	out := a.AnalyzeAll(context.Background(), headlines)

	require.Len(t, out, 3)
	for i, h := range out {
		assert.Equal(t, headlines[i].Title, h.Title, "input ordering must be preserved")
		assert.Equal(t, 0.0, h.Sentiment)
		assert.Equal(t, degradedSummary, h.Summary)
		assert.Equal(t, models.AnalysisDegraded, h.Analysis)
	}
	assert.Zero(t, chat.completes)
}

func TestAnalyzeDegradesAfterBoundedRetry(t *testing.T) {
	chat := &fakeChat{complete: func(string, string) (string, error) {
		return "", errors.New("timeout")
	}}
	a := New(testSession(chat), false)

	out := a.AnalyzeAll(context.Background(), []models.Headline{{Title: "Some headline"}})

	require.Len(t, out, 1)
	assert.Equal(t, models.AnalysisDegraded, out[0].Analysis)
	assert.Equal(t, 2, chat.completes, "one retry per headline, then degrade")
}

func TestAnalyzeEmptyTitleSkipsModelCall(t *testing.T) {
	chat := &fakeChat{}
	a := New(testSession(chat), false)

	out := a.AnalyzeAll(context.Background(), []models.Headline{{Title: ""}})

	require.Len(t, out, 1)
	assert.Equal(t, models.AnalysisDegraded, out[0].Analysis)
	assert.Zero(t, chat.completes)
}

func TestLocalFallbackStaysInRange(t *testing.T) {
	chat := &fakeChat{probeErr: errors.New("down")}
	a := New(testSession(chat), true)

	out := a.AnalyzeAll(context.Background(), []models.Headline{
		{Title: "Star guard suffers devastating season-ending injury"},
	})

	require.Len(t, out, 1)
	assert.Equal(t, models.AnalysisDegraded, out[0].Analysis)
	assert.GreaterOrEqual(t, out[0].Sentiment, -1.0)
	assert.LessOrEqual(t, out[0].Sentiment, 1.0)
	assert.Contains(t, out[0].Summary, "Offline")
}

func TestBuildPromptPrefersArticleBody(t *testing.T) {
	h := models.Headline{
		Title:       "Knicks sign veteran center",
		Description: "short blurb",
		ArticleBody: "A much longer article body with the full reporting and plenty of detail.",
	}
	prompt := buildPrompt(h)
	assert.Contains(t, prompt, h.ArticleBody)
	assert.NotContains(t, prompt, "short blurb")

	h.ArticleBody = "tiny"
	prompt = buildPrompt(h)
	assert.Contains(t, prompt, "short blurb")
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantScore   float64
		wantSummary string
	}{
		{
			name:        "well formed",
			in:          "SENTIMENT: -0.7\nSUMMARY: Bad news for the bench.",
			wantScore:   -0.7,
			wantSummary: "Bad news for the bench.",
		},
		{
			name:        "score clamped high",
			in:          "SENTIMENT: 3.5\nSUMMARY: Over-enthusiastic model.",
			wantScore:   1.0,
			wantSummary: "Over-enthusiastic model.",
		},
		{
			name:        "score clamped low",
			in:          "SENTIMENT: -2\nSUMMARY: Doom.",
			wantScore:   -1.0,
			wantSummary: "Doom.",
		},
		{
			name:        "missing tags falls back to first number",
			in:          "I'd rate this 0.25 overall.",
			wantScore:   0.25,
			wantSummary: "No summary available",
		},
		{
			name:        "no numbers at all",
			in:          "cannot comply",
			wantScore:   0.0,
			wantSummary: "No summary available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, summary := parseResponse(tt.in)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}

func TestParseResponseCapsSummaryLength(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	_, summary := parseResponse("SENTIMENT: 0.1\nSUMMARY: " + string(long))
	assert.Len(t, summary, maxSummaryLen+3)
	assert.True(t, len(summary) <= maxSummaryLen+3)
}
