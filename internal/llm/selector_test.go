package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChat is a scriptable ChatClient shared by the tests in this package.
type fakeChat struct {
	probeErrs  map[string]error
	probes     []string
	complete   func(model, prompt string) (string, error)
	completes  int
	lastModel  string
	lastPrompt string
}

func (f *fakeChat) Probe(_ context.Context, model string) error {
	f.probes = append(f.probes, model)
	if err, ok := f.probeErrs[model]; ok {
		return err
	}
	return nil
}

func (f *fakeChat) Complete(_ context.Context, model, prompt string) (string, error) {
	f.completes++
	f.lastModel = model
	f.lastPrompt = prompt
	if f.complete != nil {
		return f.complete(model, prompt)
	}
	return "SENTIMENT: 0.5\nSUMMARY: fine.", nil
}

func testCatalog() []ModelCandidate {
	return []ModelCandidate{
		{ID: "model-a", RPM: 5, RPD: 20, Rank: 0},
		{ID: "model-b", RPM: 30, RPD: 14400, Rank: 1},
	}
}

func TestSelectReturnsFirstLiveCandidate(t *testing.T) {
	chat := &fakeChat{}
	s := NewSelector(chat, testCatalog())

	cand, err := s.Select(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "model-a", cand.ID)
	assert.Equal(t, []string{"model-a"}, chat.probes)
}

func TestSelectSkipsFailedProbe(t *testing.T) {
	chat := &fakeChat{probeErrs: map[string]error{"model-a": errors.New("401 invalid key")}}
	s := NewSelector(chat, testCatalog())

	cand, err := s.Select(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "model-b", cand.ID)
	assert.True(t, s.Exhausted("model-a"), "failed probe should exhaust the candidate")
}

func TestSelectCachesActiveCandidate(t *testing.T) {
	chat := &fakeChat{}
	s := NewSelector(chat, testCatalog())

	_, err := s.Select(context.Background())
	require.NoError(t, err)
	_, err = s.Select(context.Background())
	require.NoError(t, err)

	assert.Len(t, chat.probes, 1, "active candidate must not be re-probed")
}

func TestSelectExhaustedCatalog(t *testing.T) {
	chat := &fakeChat{probeErrs: map[string]error{
		"model-a": errors.New("quota exceeded"),
		"model-b": errors.New("model not found"),
	}}
	s := NewSelector(chat, testCatalog())

	_, err := s.Select(context.Background())
	require.ErrorIs(t, err, ErrNoModelAvailable)
	// At most N probes for a catalog of size N, and never again afterwards.
	assert.Len(t, chat.probes, 2)

	_, err = s.Select(context.Background())
	require.ErrorIs(t, err, ErrNoModelAvailable)
	assert.Len(t, chat.probes, 2, "exhausted candidates must never be re-probed in a run")
}

func TestExhaustAdvancesSelection(t *testing.T) {
	chat := &fakeChat{}
	s := NewSelector(chat, testCatalog())

	cand, err := s.Select(context.Background())
	require.NoError(t, err)
	require.Equal(t, "model-a", cand.ID)

	s.Exhaust(cand.ID)

	cand, err = s.Select(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "model-b", cand.ID)
}
