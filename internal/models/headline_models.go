package models

// AnalysisStatus records whether a headline's enrichment came from a live
// model call or from the degraded default path.
type AnalysisStatus string

const (
	AnalysisOK       AnalysisStatus = "ok"
	AnalysisDegraded AnalysisStatus = "degraded"
)

// Headline is one scraped news item. The collector fills the scrape fields;
// the analyzer fills Sentiment, Summary, and Analysis.
type Headline struct {
	Title       string `json:"headline"`
	Description string `json:"description"`
	URL         string `json:"link"`
	Date        string `json:"date"`
	// Team is the full team name extracted from the headline text, empty
	// when no team could be matched.
	Team string `json:"team,omitempty"`
	// ArticleBody is the scraped article text, capped at 2000 characters.
	ArticleBody string `json:"article_content,omitempty"`

	// Sentiment is in [-1.0, 1.0]; 0.0 is the neutral sentinel used when
	// Analysis is degraded.
	Sentiment float64        `json:"sentiment"`
	Summary   string         `json:"summary"`
	Analysis  AnalysisStatus `json:"analysis"`
}
