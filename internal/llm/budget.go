package llm

import (
	"errors"
	"time"
)

// Denial reasons returned by TryReserve.
var (
	ErrPerMinuteLimit = errors.New("per-minute request limit reached")
	ErrPerDayLimit    = errors.New("per-day request limit reached")
)

type budgetWindow struct {
	minuteStart time.Time
	minuteCount int
	dayStart    time.Time
	dayCount    int
}

// Budget enforces per-minute and per-day call counters per candidate.
// Windows are fixed, not rolling: each opens at the first reservation after
// a reset and resets once 60s (respectively 24h) have elapsed. Counters are
// keyed by candidate ID so a mid-run failover keeps the consumption already
// charged to earlier models. State lives for one process only; cross-run
// daily accounting is an explicit non-goal.
//
// Not safe for concurrent use; reservations are serialized by the pipeline.
type Budget struct {
	now      func() time.Time
	counters map[string]*budgetWindow
}

// NewBudget returns an empty budget on the wall clock.
func NewBudget() *Budget {
	return &Budget{
		now:      time.Now,
		counters: make(map[string]*budgetWindow),
	}
}

// TryReserve charges one call against cand's windows, or reports why it
// cannot. Counters never exceed the candidate's tier limits.
func (b *Budget) TryReserve(cand ModelCandidate) error {
	now := b.now()
	w, ok := b.counters[cand.ID]
	if !ok {
		w = &budgetWindow{minuteStart: now, dayStart: now}
		b.counters[cand.ID] = w
	}

	if now.Sub(w.minuteStart) >= time.Minute {
		w.minuteStart = now
		w.minuteCount = 0
	}
	if now.Sub(w.dayStart) >= 24*time.Hour {
		w.dayStart = now
		w.dayCount = 0
	}

	if w.minuteCount+1 > cand.RPM {
		return ErrPerMinuteLimit
	}
	if w.dayCount+1 > cand.RPD {
		return ErrPerDayLimit
	}

	w.minuteCount++
	w.dayCount++
	return nil
}

// MinuteCount returns the calls charged to a candidate in the current
// minute window.
func (b *Budget) MinuteCount(id string) int {
	if w, ok := b.counters[id]; ok {
		return w.minuteCount
	}
	return 0
}

// DayCount returns the calls charged to a candidate in the current day
// window.
func (b *Budget) DayCount(id string) int {
	if w, ok := b.counters[id]; ok {
		return w.dayCount
	}
	return 0
}
