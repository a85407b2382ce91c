package llm

import openai "github.com/sashabaranov/go-openai"

// ModelCandidate is one chat-model option with its rate-limit tier. Rank
// orders the fallback chain, lower is preferred.
type ModelCandidate struct {
	ID   string
	RPM  int
	RPD  int
	Rank int
}

// DefaultCatalog returns the static preference ladder, better daily quota
// first. The catalog is injected into the selector so tests can substitute
// their own ordering.
func DefaultCatalog() []ModelCandidate {
	return []ModelCandidate{
		{ID: openai.GPT4oMini, RPM: 30, RPD: 14400, Rank: 0},
		{ID: openai.GPT3Dot5Turbo1106, RPM: 60, RPD: 10000, Rank: 1},
		{ID: openai.GPT4o, RPM: 5, RPD: 500, Rank: 2},
	}
}
