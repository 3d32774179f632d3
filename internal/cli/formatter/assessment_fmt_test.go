package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/caseflow/internal/domain"
)

func TestScoreBar(t *testing.T) {
	assert.Contains(t, ScoreBar(5), "█████")
	assert.Contains(t, ScoreBar(0), "░░░░░")
	assert.Contains(t, ScoreBar(3), "███░░")
	// Out-of-range scores are clamped.
	assert.Contains(t, ScoreBar(9), "█████")
}

func TestFormatAssessment(t *testing.T) {
	a := &domain.Assessment{
		ID:        "a1",
		SessionID: "s1",
		DimensionScores: map[string]int{
			"Structure":     4,
			"Communication": 3,
		},
		OverallScore: 3.6,
		Feedback:     "Strong framework, quantify your recommendation next time.",
		Source:       domain.AssessmentSourceLLM,
	}

	out := FormatAssessment(a)
	assert.Contains(t, out, "Structure")
	assert.Contains(t, out, "Communication")
	assert.Contains(t, out, "3.6")
	assert.Contains(t, out, "model-scored")
	assert.Contains(t, out, "quantify your recommendation")
}

func TestFormatAssessment_Nil(t *testing.T) {
	assert.Contains(t, FormatAssessment(nil), "Not assessed")
}
