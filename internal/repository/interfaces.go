package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type SessionRepo interface {
	Create(ctx context.Context, s *domain.PracticeSession) error
	GetByID(ctx context.Context, id string) (*domain.PracticeSession, error)
	List(ctx context.Context, limit int) ([]*domain.PracticeSession, error)
	Update(ctx context.Context, s *domain.PracticeSession) error
	Delete(ctx context.Context, id string) error
}

type TranscriptRepo interface {
	// AppendEntries persists entries starting at the given sequence
	// number. Entries for one session are written once, in order.
	AppendEntries(ctx context.Context, sessionID string, startSeq int, entries []domain.TranscriptEntry) error
	GetBySession(ctx context.Context, sessionID string) (*domain.Transcript, error)
}

type AssessmentRepo interface {
	Create(ctx context.Context, a *domain.Assessment) error
	GetBySession(ctx context.Context, sessionID string) (*domain.Assessment, error)
}
