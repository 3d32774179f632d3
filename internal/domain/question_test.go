package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() Question {
	return Question{
		ID:          "q-prof-1",
		Track:       TrackConsulting,
		Type:        TypeProfitability,
		Title:       "Declining margins at a coffee chain",
		Description: "Your client is a national coffee chain whose profits fell 20% last year.",
		Difficulty:  DifficultyMedium,
		Company:     "McKinsey",
	}
}

func TestQuestionValidate_OK(t *testing.T) {
	q := validQuestion()
	assert.NoError(t, q.Validate())
}

func TestQuestionValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"missing id", func(q *Question) { q.ID = "" }},
		{"unknown track", func(q *Question) { q.Track = "finance" }},
		{"type from wrong track", func(q *Question) { q.Type = TypeProductSense }},
		{"missing title", func(q *Question) { q.Title = "" }},
		{"missing description", func(q *Question) { q.Description = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			assert.Error(t, q.Validate())
		})
	}
}

func TestIsValidType_PerTrack(t *testing.T) {
	assert.True(t, IsValidType(TrackConsulting, TypeMarketSizing))
	assert.True(t, IsValidType(TrackProductManagement, TypeProductSense))
	assert.False(t, IsValidType(TrackConsulting, TypeProductSense))
	assert.False(t, IsValidType(TrackProductManagement, TypeProfitability))
}
