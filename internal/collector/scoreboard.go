package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"courtside/internal/models"
)

const nbaScoreboardURL = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"

// NBA live-data game status codes.
const (
	statusScheduled  = 1
	statusInProgress = 2
	statusFinal      = 3
)

type scoreboardTeam struct {
	TeamCity string `json:"teamCity"`
	TeamName string `json:"teamName"`
	Score    int    `json:"score"`
}

type scoreboardGame struct {
	GameID         string         `json:"gameId"`
	GameStatus     int            `json:"gameStatus"`
	GameStatusText string         `json:"gameStatusText"`
	HomeTeam       scoreboardTeam `json:"homeTeam"`
	AwayTeam       scoreboardTeam `json:"awayTeam"`
}

type scoreboardResponse struct {
	Scoreboard struct {
		GameDate string           `json:"gameDate"`
		Games    []scoreboardGame `json:"games"`
	} `json:"scoreboard"`
}

// FetchScoreboard pulls today's games from the NBA live-data feed. The feed
// only serves the current day; day labels the run. Faults are absorbed into
// an empty slice plus the cause.
func (c *Collector) FetchScoreboard(ctx context.Context, day time.Time) ([]models.Game, error) {
	slog.Info("[Collector] fetching scoreboard", slog.String("date", day.Format("2006-01-02")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scoreboardURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("[Collector] scoreboard request failed", slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("[Collector] unexpected scoreboard response", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("scoreboard returned %s", resp.Status)
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Error("[Collector] failed to parse scoreboard JSON", slog.String("error", err.Error()))
		return nil, err
	}

	if len(payload.Scoreboard.Games) == 0 {
		slog.Info("[Collector] no games scheduled for today")
		return nil, nil
	}

	games := make([]models.Game, 0, len(payload.Scoreboard.Games))
	for _, g := range payload.Scoreboard.Games {
		games = append(games, models.Game{
			GameID:     g.GameID,
			HomeTeam:   fullTeamName(g.HomeTeam),
			AwayTeam:   fullTeamName(g.AwayTeam),
			HomeScore:  g.HomeTeam.Score,
			AwayScore:  g.AwayTeam.Score,
			Started:    g.GameStatus != statusScheduled,
			Status:     gameStatus(g.GameStatus),
			StatusText: g.GameStatusText,
			GameDate:   day.Format("2006-01-02"),
		})
	}

	slog.Info("[Collector] fetched games", slog.Int("count", len(games)))
	return games, nil
}

func fullTeamName(t scoreboardTeam) string {
	if t.TeamCity == "" {
		return t.TeamName
	}
	return t.TeamCity + " " + t.TeamName
}

func gameStatus(code int) models.GameStatus {
	switch code {
	case statusInProgress:
		return models.GameInProgress
	case statusFinal:
		return models.GameFinal
	default:
		return models.GameScheduled
	}
}
