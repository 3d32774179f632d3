package domain

import (
	"fmt"
	"time"
)

// Assessment holds the scored outcome of one completed session.
// Dimension names reference exactly one rubric's dimension set.
type Assessment struct {
	ID              string
	SessionID       string
	DimensionScores map[string]int // dimension name -> 1..5
	OverallScore    float64        // 0..5, weighted
	Feedback        string
	Source          AssessmentSource
	CreatedAt       time.Time
}

type AssessmentSource string

const (
	AssessmentSourceLLM       AssessmentSource = "llm"
	AssessmentSourceHeuristic AssessmentSource = "heuristic"
)

// Validate checks score ranges. Dimension-set membership is validated by
// the assessor against the rubric that produced the scores.
func (a *Assessment) Validate() error {
	if a.SessionID == "" {
		return fmt.Errorf("assessment requires a session id")
	}
	for name, score := range a.DimensionScores {
		if score < 1 || score > 5 {
			return fmt.Errorf("dimension %q: score %d out of range [1,5]", name, score)
		}
	}
	if a.OverallScore < 0 || a.OverallScore > 5 {
		return fmt.Errorf("overall score %.2f out of range [0,5]", a.OverallScore)
	}
	return nil
}
