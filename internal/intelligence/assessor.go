package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/llm"
	"github.com/alexanderramin/caseflow/internal/rubric"
)

// Assessor scores a completed session transcript against the rubric for
// its question type. Assessment never blocks session completion: when
// the model path fails the deterministic scorer takes over, so the only
// returned errors are programming mistakes upstream.
type Assessor interface {
	Assess(ctx context.Context, q *domain.Question, rub *rubric.Config, tr *domain.Transcript) (*domain.Assessment, error)
}

type assessor struct {
	client llm.Client
	cfg    llm.Config
	logger *slog.Logger
}

// NewAssessor creates an Assessor. A nil client forces the
// deterministic path, which is the offline default.
func NewAssessor(client llm.Client, cfg llm.Config, logger *slog.Logger) Assessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &assessor{client: client, cfg: cfg, logger: logger}
}

func (a *assessor) Assess(ctx context.Context, q *domain.Question, rub *rubric.Config, tr *domain.Transcript) (*domain.Assessment, error) {
	if tr == nil {
		return nil, fmt.Errorf("assess: nil transcript")
	}

	if a.cfg.Enabled && a.client != nil {
		if assessment, ok := a.assessWithModel(ctx, q, rub, tr); ok {
			return assessment, nil
		}
	}

	return DeterministicAssessment(tr, rub), nil
}

// assessWithModel runs the scoring prompt and validates the result
// against the rubric's dimension set. Any failure reports not-ok and
// the caller degrades to the deterministic scorer.
func (a *assessor) assessWithModel(ctx context.Context, q *domain.Question, rub *rubric.Config, tr *domain.Transcript) (*domain.Assessment, bool) {
	prompt, err := buildAssessPrompt(q, rub, tr)
	if err != nil {
		return nil, false
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAssess,
		SystemPrompt: assessSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		a.logger.Debug("assess call failed, using deterministic scorer", "error", err)
		return nil, false
	}

	scored, err := llm.ExtractJSON(resp.Text, scoreValidator(rub))
	if err != nil {
		a.logger.Debug("assess output rejected, using deterministic scorer", "error", err)
		return nil, false
	}

	return &domain.Assessment{
		ID:              uuid.NewString(),
		SessionID:       tr.SessionID,
		DimensionScores: scored.Scores,
		OverallScore:    weightedOverall(scored.Scores, rub),
		Feedback:        scored.Feedback,
		Source:          domain.AssessmentSourceLLM,
		CreatedAt:       time.Now().UTC(),
	}, true
}

// scoreValidator enforces that the model scored exactly the rubric's
// dimensions, each within range.
func scoreValidator(rub *rubric.Config) llm.SchemaValidator[scoredTranscript] {
	return func(s scoredTranscript) error {
		if len(s.Scores) == 0 {
			return fmt.Errorf("no scores returned")
		}
		for name, score := range s.Scores {
			if score < 1 || score > 5 {
				return fmt.Errorf("dimension %q: score %d out of range [1,5]", name, score)
			}
		}
		if rub == nil {
			return nil
		}
		names := rub.DimensionNames()
		if len(s.Scores) != len(names) {
			return fmt.Errorf("scored %d dimensions, rubric has %d", len(s.Scores), len(names))
		}
		for _, name := range names {
			if _, ok := s.Scores[name]; !ok {
				return fmt.Errorf("rubric dimension %q missing from scores", name)
			}
		}
		return nil
	}
}

func buildAssessPrompt(q *domain.Question, rub *rubric.Config, tr *domain.Transcript) (string, error) {
	payload := struct {
		Question   string         `json:"question"`
		Rubric     *rubric.Config `json:"rubric,omitempty"`
		Incomplete bool           `json:"incomplete"`
	}{
		Incomplete: tr.Incomplete,
	}
	if q != nil {
		payload.Question = q.Title + ": " + q.Description
	}
	payload.Rubric = rub

	meta, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(meta) + "\n\nTRANSCRIPT:\n" + tr.Render(), nil
}

// weightedOverall folds dimension scores into a 0..5 overall using the
// rubric weights; with no rubric every dimension weighs the same.
func weightedOverall(scores map[string]int, rub *rubric.Config) float64 {
	if len(scores) == 0 {
		return 0
	}
	if rub == nil {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		return float64(sum) / float64(len(scores))
	}
	total := 0.0
	for name, s := range scores {
		total += float64(s) * float64(rub.WeightFor(name))
	}
	return total / 100.0
}
