package service

import (
	"context"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/engine"
)

// StartResult is the outcome of opening a new practice session.
type StartResult struct {
	Session      *domain.PracticeSession
	SystemPrompt string
	Opening      string
}

// InterviewService orchestrates the lifecycle of practice sessions:
// starting one from the question catalog, advancing it turn by turn,
// and closing it out with a scored assessment.
type InterviewService interface {
	Start(ctx context.Context, questionID string) (*StartResult, error)
	Advance(ctx context.Context, sessionID string, input engine.TurnInput) (engine.Directive, error)
	Finish(ctx context.Context, sessionID string) (*domain.Assessment, error)

	GetSession(ctx context.Context, id string) (*domain.PracticeSession, error)
	ListSessions(ctx context.Context, limit int) ([]*domain.PracticeSession, error)
	GetTranscript(ctx context.Context, sessionID string) (*domain.Transcript, error)
	GetAssessment(ctx context.Context, sessionID string) (*domain.Assessment, error)
}
