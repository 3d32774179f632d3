package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/caseflow/internal/engine"
	"github.com/alexanderramin/caseflow/internal/llm"
	"github.com/alexanderramin/caseflow/internal/signals"
)

// fakeClient returns a scripted response or error.
type fakeClient struct {
	text string
	err  error
}

func (f *fakeClient) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "test"}, nil
}

func (f *fakeClient) Available(context.Context) bool { return f.err == nil }

func enabledConfig() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	return cfg
}

func segmentsPhase() engine.PhaseSpec {
	return engine.PhaseSpec{
		ID:   engine.PhaseSegments,
		Name: "User Segments",
		Exit: engine.ExitCriterion{EntityKind: engine.EntitySegment, MinDistinct: 3},
	}
}

func TestLLMAnalyzer_ModelReading(t *testing.T) {
	client := &fakeClient{text: `{
		"pause_requested": false,
		"unintelligible": false,
		"off_topic": false,
		"skip_requested": false,
		"entities": [
			{"kind": "segment", "name": "students"},
			{"kind": "segment", "name": "commuters"},
			{"kind": "metric", "name": "dau"}
		],
		"states_choice": false,
		"choice": "",
		"reason_count": 0,
		"claimed_count": 2,
		"confidence": 0.92
	}`}

	a := NewLLMAnalyzer(client, enabledConfig(), signals.NewHeuristic(), nil)
	sig := a.Analyze("students and commuters mostly", segmentsPhase())

	require.Len(t, sig.Entities, 2, "off-kind entities are dropped")
	assert.Equal(t, engine.EntitySegment, sig.Entities[0].Kind)
	assert.Equal(t, 2, sig.ClaimedCount)
}

func TestLLMAnalyzer_FallsBackOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}

	a := NewLLMAnalyzer(client, enabledConfig(), signals.NewHeuristic(), nil)
	sig := a.Analyze("Hmm, let me think about that for a moment.", segmentsPhase())

	assert.True(t, sig.PauseRequested, "lexical fallback carries the turn")
}

func TestLLMAnalyzer_FallsBackOnGarbageOutput(t *testing.T) {
	client := &fakeClient{text: "I am not JSON, sorry."}

	a := NewLLMAnalyzer(client, enabledConfig(), signals.NewHeuristic(), nil)
	sig := a.Analyze("can we skip this part?", segmentsPhase())

	assert.True(t, sig.SkipRequested)
}

func TestLLMAnalyzer_FallsBackBelowConfidenceThreshold(t *testing.T) {
	client := &fakeClient{text: `{"pause_requested": true, "confidence": 0.3}`}

	cfg := enabledConfig()
	cfg.ConfidenceThreshold = 0.7

	a := NewLLMAnalyzer(client, cfg, signals.NewHeuristic(), nil)
	sig := a.Analyze("I'd start with the revenue side.", segmentsPhase())

	assert.False(t, sig.PauseRequested, "low-confidence reading is discarded")
}

func TestLLMAnalyzer_DisabledSkipsModelEntirely(t *testing.T) {
	client := &fakeClient{err: errors.New("must not be called")}

	cfg := llm.DefaultConfig() // Enabled: false
	a := NewLLMAnalyzer(client, cfg, signals.NewHeuristic(), nil)
	sig := a.Analyze("give me a second to structure this", segmentsPhase())

	assert.True(t, sig.PauseRequested)
}

func TestLLMAnalyzer_RejectsOutOfRangeConfidence(t *testing.T) {
	client := &fakeClient{text: `{"pause_requested": true, "confidence": 1.8}`}

	a := NewLLMAnalyzer(client, enabledConfig(), signals.NewHeuristic(), nil)
	sig := a.Analyze("plain statement about costs", segmentsPhase())

	assert.False(t, sig.PauseRequested, "invalid contract falls back")
}
