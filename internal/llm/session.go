package llm

import (
	"context"
	"log/slog"
)

// Session ties one run's selector and budget together and implements the
// reserve → call → fail-over protocol shared by the analyzer and the
// briefer. It is constructed once by the orchestrator and passed by pointer
// into both, so all call sites share one truth about quota consumption and
// exhausted candidates.
type Session struct {
	Client   ChatClient
	Selector *Selector
	Budget   *Budget
}

// NewSession builds run-scoped selector and budget state over the catalog.
func NewSession(client ChatClient, catalog []ModelCandidate) *Session {
	return &Session{
		Client:   client,
		Selector: NewSelector(client, catalog),
		Budget:   NewBudget(),
	}
}

// Complete runs one prompt through the active candidate. A denied
// reservation exhausts the candidate and the call moves to the next one; a
// transient API error burns the reservation and is retried once. At most two
// attempts per call, so a single prompt can never loop the catalog.
// ErrNoModelAvailable reports total exhaustion.
func (s *Session) Complete(ctx context.Context, prompt string) (string, error) {
	const maxAttempts = 2

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cand, err := s.Selector.Select(ctx)
		if err != nil {
			return "", err
		}

		if err := s.Budget.TryReserve(cand); err != nil {
			slog.Warn("[Session] reservation denied, failing over",
				slog.String("model", cand.ID),
				slog.String("reason", err.Error()))
			s.Selector.Exhaust(cand.ID)
			lastErr = err
			continue
		}

		out, err := s.Client.Complete(ctx, cand.ID, prompt)
		if err != nil {
			slog.Warn("[Session] completion failed",
				slog.String("model", cand.ID),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}
		return out, nil
	}

	return "", lastErr
}
