package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// Session options
type SessionOption func(*domain.PracticeSession)

func WithSessionStatus(s domain.SessionStatus) SessionOption {
	return func(p *domain.PracticeSession) {
		p.Status = s
	}
}

func WithQuestion(q *domain.Question) SessionOption {
	return func(p *domain.PracticeSession) {
		p.QuestionID = q.ID
		p.Track = q.Track
		p.Type = q.Type
	}
}

func WithFormat(f domain.InterviewFormat) SessionOption {
	return func(p *domain.PracticeSession) {
		p.Format = f
	}
}

func WithIncomplete() SessionOption {
	return func(p *domain.PracticeSession) {
		p.Incomplete = true
	}
}

// NewTestSession builds a running consulting session with sane defaults.
func NewTestSession(opts ...SessionOption) *domain.PracticeSession {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.PracticeSession{
		ID:         uuid.New().String(),
		QuestionID: "cons-prof-coffee",
		Track:      domain.TrackConsulting,
		Type:       domain.TypeProfitability,
		Format:     domain.FormatInterviewerLed,
		Status:     domain.SessionRunning,
		LastPhase:  "INTRO",
		StartedAt:  now,
		CreatedAt:  now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestTranscript builds a transcript with alternating turns.
func NewTestTranscript(sessionID string, candidateLines ...string) *domain.Transcript {
	tr := &domain.Transcript{SessionID: sessionID}
	at := time.Now().UTC().Truncate(time.Second)
	for _, line := range candidateLines {
		tr.Append(domain.RoleInterviewer, "Go on.", at)
		tr.Append(domain.RoleCandidate, line, at.Add(30*time.Second))
		at = at.Add(time.Minute)
	}
	return tr
}

// NewTestAssessment builds a heuristic assessment for a session.
func NewTestAssessment(sessionID string) *domain.Assessment {
	return &domain.Assessment{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		DimensionScores: map[string]int{
			"Structure":     4,
			"Communication": 3,
		},
		OverallScore: 3.6,
		Feedback:     "Solid structure; lead with the answer.",
		Source:       domain.AssessmentSourceHeuristic,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}
