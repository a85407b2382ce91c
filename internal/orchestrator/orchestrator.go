package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courtside/internal/models"
)

// HeadlineSource pulls scraped headlines; an error means the collect stage
// degrades, never that the run aborts.
type HeadlineSource interface {
	FetchHeadlines(ctx context.Context) ([]models.Headline, error)
}

// ScoreboardSource pulls the day's games under the same contract.
type ScoreboardSource interface {
	FetchScoreboard(ctx context.Context, day time.Time) ([]models.Game, error)
}

// Analyzer enriches headlines in place, absorbing per-headline failures.
type Analyzer interface {
	AnalyzeAll(ctx context.Context, headlines []models.Headline) []models.Headline
}

// Briefer produces the narrative; degraded reports the fallback was used.
type Briefer interface {
	Brief(ctx context.Context, headlines []models.Headline, games []models.Game) (text string, degraded bool)
}

// Deliverer hands the assembled result to the outside world. Its failure is
// the only terminal error of a run.
type Deliverer interface {
	Deliver(result models.PipelineResult) error
}

// Deps wires the stage collaborators into the orchestrator.
type Deps struct {
	Headlines  HeadlineSource
	Scoreboard ScoreboardSource
	Analyzer   Analyzer
	Briefer    Briefer
	Deliverer  Deliverer
	RunID      string
}

// Orchestrator drives the Collect → Analyze → Brief → Deliver sequence.
// Every upstream failure downgrades its stage to an empty or placeholder
// contribution; only delivery failure aborts the run.
type Orchestrator struct {
	deps Deps
	now  func() time.Time
}

// New builds the orchestrator; stage state is scoped to one Run call.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{deps: deps, now: time.Now}
}

// Run executes one pipeline pass and delivers the result. The returned error
// is non-nil only when delivery itself failed.
func (o *Orchestrator) Run(ctx context.Context) (models.PipelineResult, error) {
	result := models.PipelineResult{
		RunID: o.deps.RunID,
		Date:  o.now(),
		Stages: models.StageReport{
			Collect: models.StageOK,
			Analyze: models.StageOK,
			Brief:   models.StageOK,
		},
	}

	slog.Info("[Orchestrator] run started", slog.String("run_id", result.RunID))

	// Collect. Faults degrade to empty slices; an empty result without a
	// fault is an ordinary quiet news day.
	headlines, err := o.deps.Headlines.FetchHeadlines(ctx)
	if err != nil {
		slog.Warn("[Orchestrator] headline collection degraded", slog.String("error", err.Error()))
		headlines = nil
		result.Stages.Collect = models.StageDegraded
	}
	games, err := o.deps.Scoreboard.FetchScoreboard(ctx, result.Date)
	if err != nil {
		slog.Warn("[Orchestrator] scoreboard collection degraded", slog.String("error", err.Error()))
		games = nil
		result.Stages.Collect = models.StageDegraded
	}
	result.Games = games

	// Analyze. Zero headlines means zero model calls.
	result.Headlines = o.deps.Analyzer.AnalyzeAll(ctx, headlines)
	for _, h := range result.Headlines {
		if h.Analysis == models.AnalysisDegraded {
			result.Stages.Analyze = models.StageDegraded
			break
		}
	}

	// Brief. Runs even with empty context; the fallback narrative keeps the
	// email sendable.
	text, degraded := o.deps.Briefer.Brief(ctx, result.Headlines, result.Games)
	result.Briefing = text
	if degraded {
		result.Stages.Brief = models.StageDegraded
	}

	// Deliver. Single attempt; there is no queue to park a retry on.
	if err := o.deps.Deliverer.Deliver(result); err != nil {
		slog.Error("[Orchestrator] delivery failed, aborting run",
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()))
		return result, fmt.Errorf("deliver briefing: %w", err)
	}

	slog.Info("[Orchestrator] run complete",
		slog.String("run_id", result.RunID),
		slog.String("collect", string(result.Stages.Collect)),
		slog.String("analyze", string(result.Stages.Analyze)),
		slog.String("brief", string(result.Stages.Brief)))
	return result, nil
}
