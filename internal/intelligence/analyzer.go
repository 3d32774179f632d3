package intelligence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/caseflow/internal/engine"
	"github.com/alexanderramin/caseflow/internal/llm"
)

// LLMAnalyzer reads candidate utterances with a language model and
// falls back to the deterministic analyzer whenever the model is
// unavailable, emits garbage, or is unsure of its own reading. It
// satisfies the engine's must-not-fail contract by construction.
type LLMAnalyzer struct {
	client   llm.Client
	cfg      llm.Config
	fallback engine.Analyzer
	logger   *slog.Logger
}

// NewLLMAnalyzer wires the model-backed analyzer. fallback must be
// non-nil; it carries every turn the model cannot.
func NewLLMAnalyzer(client llm.Client, cfg llm.Config, fallback engine.Analyzer, logger *slog.Logger) *LLMAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMAnalyzer{client: client, cfg: cfg, fallback: fallback, logger: logger}
}

func (a *LLMAnalyzer) Analyze(utterance string, phase engine.PhaseSpec) engine.Signals {
	if !a.cfg.Enabled || a.client == nil {
		return a.fallback.Analyze(utterance, phase)
	}

	userPrompt := fmt.Sprintf(
		"Phase: %s\nExpected item kind: %s\n\nUtterance:\n%s",
		phase.Name, string(phase.Exit.EntityKind), utterance)

	resp, err := a.client.Generate(context.Background(), llm.GenerateRequest{
		Task:         llm.TaskAnalyze,
		SystemPrompt: analyzeSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		a.logger.Debug("analyze call failed, using lexical fallback", "error", err)
		return a.fallback.Analyze(utterance, phase)
	}

	reading, err := llm.ExtractJSON(resp.Text, validateReading)
	if err != nil {
		a.logger.Debug("analyze output rejected, using lexical fallback", "error", err)
		return a.fallback.Analyze(utterance, phase)
	}

	if reading.Confidence < a.cfg.ConfidenceThreshold {
		return a.fallback.Analyze(utterance, phase)
	}

	return reading.toSignals(phase.Exit.EntityKind)
}
