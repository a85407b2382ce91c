package models

// GameStatus is the normalized state of a scoreboard entry.
type GameStatus string

const (
	GameScheduled  GameStatus = "scheduled"
	GameInProgress GameStatus = "in_progress"
	GameFinal      GameStatus = "final"
)

// Game is one scoreboard matchup, immutable once fetched. Scores are only
// meaningful when Started is true.
type Game struct {
	GameID     string     `json:"game_id"`
	HomeTeam   string     `json:"home_team"`
	AwayTeam   string     `json:"away_team"`
	HomeScore  int        `json:"home_score"`
	AwayScore  int        `json:"away_score"`
	Started    bool       `json:"started"`
	Status     GameStatus `json:"status"`
	StatusText string     `json:"status_text"`
	GameDate   string     `json:"game_date"`
}
