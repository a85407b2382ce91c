package llm

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoModelAvailable reports that every catalog candidate is exhausted.
var ErrNoModelAvailable = errors.New("no model available: candidate catalog exhausted")

// Selector walks the candidate catalog in preference order and hands out the
// first candidate whose liveness probe succeeds. Candidates that fail a probe
// or get marked exhausted by a caller stay out of rotation for the rest of
// the run, so a catalog of size N sees at most N probe attempts.
//
// Not safe for concurrent use; the pipeline consults it from a single
// goroutine.
type Selector struct {
	client    ChatClient
	catalog   []ModelCandidate
	active    *ModelCandidate
	exhausted map[string]struct{}
}

// NewSelector builds a selector over an injected catalog. Exhaustion state
// starts empty and is never persisted across runs.
func NewSelector(client ChatClient, catalog []ModelCandidate) *Selector {
	return &Selector{
		client:    client,
		catalog:   catalog,
		exhausted: make(map[string]struct{}),
	}
}

// Select returns the active candidate, probing down the catalog when none is
// active. Probes are not charged to any rate budget.
func (s *Selector) Select(ctx context.Context) (ModelCandidate, error) {
	if s.active != nil {
		return *s.active, nil
	}

	for _, cand := range s.catalog {
		if _, dead := s.exhausted[cand.ID]; dead {
			continue
		}
		if err := s.client.Probe(ctx, cand.ID); err != nil {
			slog.Warn("[ModelSelector] probe failed, trying next candidate",
				slog.String("model", cand.ID),
				slog.String("error", err.Error()))
			s.exhausted[cand.ID] = struct{}{}
			continue
		}

		cand := cand
		s.active = &cand
		slog.Info("[ModelSelector] model selected", slog.String("model", cand.ID))
		return cand, nil
	}

	return ModelCandidate{}, ErrNoModelAvailable
}

// Exhaust takes a candidate out of rotation for the rest of the run. Callers
// use it when a reservation is denied or a call keeps failing, so the next
// Select moves on instead of retrying the same model forever.
func (s *Selector) Exhaust(id string) {
	s.exhausted[id] = struct{}{}
	if s.active != nil && s.active.ID == id {
		s.active = nil
	}
}

// Exhausted reports whether a candidate has been taken out of rotation.
func (s *Selector) Exhausted(id string) bool {
	_, dead := s.exhausted[id]
	return dead
}
