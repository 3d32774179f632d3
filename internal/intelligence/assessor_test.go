package intelligence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/rubric"
)

func testRubric() *rubric.Config {
	return &rubric.Config{
		QuestionType: domain.TypeProfitability,
		Dimensions: []rubric.Dimension{
			{Name: "Structure", Weight: 60, Criteria: map[int][]string{5: {"fully MECE"}}},
			{Name: "Communication", Weight: 40, Criteria: map[int][]string{5: {"headline first"}}},
		},
	}
}

func testTranscript(candidateTurns int, wordsPerTurn int) *domain.Transcript {
	tr := &domain.Transcript{SessionID: "s-1"}
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	line := strings.TrimSpace(strings.Repeat("profit driver analysis point ", wordsPerTurn/4))
	for i := 0; i < candidateTurns; i++ {
		tr.Append(domain.RoleInterviewer, "Go on.", at)
		tr.Append(domain.RoleCandidate, line, at.Add(time.Minute))
		at = at.Add(2 * time.Minute)
	}
	return tr
}

func TestAssessor_ModelScores(t *testing.T) {
	client := &fakeClient{text: `{
		"scores": {"Structure": 4, "Communication": 3},
		"feedback": "Strong tree, lead with the answer sooner."
	}`}

	a := NewAssessor(client, enabledConfig(), nil)
	got, err := a.Assess(context.Background(), nil, testRubric(), testTranscript(6, 24))

	require.NoError(t, err)
	assert.Equal(t, domain.AssessmentSourceLLM, got.Source)
	assert.Equal(t, 4, got.DimensionScores["Structure"])
	assert.InDelta(t, 3.6, got.OverallScore, 0.001, "weighted: 4*0.6 + 3*0.4")
	assert.NotEmpty(t, got.ID)
	require.NoError(t, got.Validate())
}

func TestAssessor_RejectsWrongDimensionSet(t *testing.T) {
	client := &fakeClient{text: `{
		"scores": {"Structure": 4, "Creativity": 5},
		"feedback": "nice"
	}`}

	a := NewAssessor(client, enabledConfig(), nil)
	got, err := a.Assess(context.Background(), nil, testRubric(), testTranscript(6, 24))

	require.NoError(t, err)
	assert.Equal(t, domain.AssessmentSourceHeuristic, got.Source,
		"scores outside the rubric's dimension set are discarded")
}

func TestAssessor_RejectsOutOfRangeScore(t *testing.T) {
	client := &fakeClient{text: `{
		"scores": {"Structure": 7, "Communication": 3},
		"feedback": "nice"
	}`}

	a := NewAssessor(client, enabledConfig(), nil)
	got, err := a.Assess(context.Background(), nil, testRubric(), testTranscript(6, 24))

	require.NoError(t, err)
	assert.Equal(t, domain.AssessmentSourceHeuristic, got.Source)
}

func TestAssessor_FallsBackWhenModelUnavailable(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}

	a := NewAssessor(client, enabledConfig(), nil)
	got, err := a.Assess(context.Background(), nil, testRubric(), testTranscript(6, 24))

	require.NoError(t, err)
	assert.Equal(t, domain.AssessmentSourceHeuristic, got.Source)
	require.NoError(t, got.Validate())
}

func TestAssessor_NilRubricUsesGenericDimensions(t *testing.T) {
	a := NewAssessor(nil, enabledConfig(), nil)
	got, err := a.Assess(context.Background(), nil, nil, testTranscript(6, 24))

	require.NoError(t, err)
	for _, name := range genericDimensions {
		assert.Contains(t, got.DimensionScores, name)
	}
	require.NoError(t, got.Validate())
}

func TestDeterministicAssessment_Shape(t *testing.T) {
	engaged := DeterministicAssessment(testTranscript(10, 28), testRubric())
	terse := DeterministicAssessment(testTranscript(2, 4), testRubric())

	assert.Greater(t, engaged.OverallScore, terse.OverallScore)
	assert.Contains(t, terse.Feedback, "short")
}

func TestDeterministicAssessment_IncompletePenalty(t *testing.T) {
	full := testTranscript(10, 28)
	cut := testTranscript(10, 28)
	cut.Incomplete = true

	a := DeterministicAssessment(full, testRubric())
	b := DeterministicAssessment(cut, testRubric())

	assert.Greater(t, a.OverallScore, b.OverallScore)
	assert.Contains(t, b.Feedback, "time ceiling")
}
