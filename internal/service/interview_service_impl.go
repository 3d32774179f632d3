package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/caseflow/internal/catalog"
	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/engine"
	"github.com/alexanderramin/caseflow/internal/intelligence"
	"github.com/alexanderramin/caseflow/internal/prompt"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/rubric"
)

// liveSession is the in-memory state of one running interview. The
// transcript is flushed to storage once, at Finish.
type liveSession struct {
	state        *domain.PracticeSession
	engine       *engine.SessionState
	question     *domain.Question
	systemPrompt string
}

type interviewService struct {
	questions *catalog.Catalog
	rubrics   *rubric.Store
	composer  *prompt.Composer
	machine   *engine.Engine
	assessor  intelligence.Assessor
	clock     engine.Clock

	uow         db.UnitOfWork
	sessions    repository.SessionRepo
	transcripts repository.TranscriptRepo
	assessments repository.AssessmentRepo
	observer    UseCaseObserver

	mu     sync.Mutex
	active map[string]*liveSession
}

// NewInterviewService wires the orchestration layer. Pass the same
// clock given to the engine so persisted timestamps agree with engine
// decisions; nil selects the system clock.
func NewInterviewService(
	questions *catalog.Catalog,
	rubrics *rubric.Store,
	composer *prompt.Composer,
	machine *engine.Engine,
	assessor intelligence.Assessor,
	clock engine.Clock,
	uow db.UnitOfWork,
	sessions repository.SessionRepo,
	transcripts repository.TranscriptRepo,
	assessments repository.AssessmentRepo,
	observers ...UseCaseObserver,
) InterviewService {
	if clock == nil {
		clock = engine.SystemClock{}
	}
	return &interviewService{
		questions:   questions,
		rubrics:     rubrics,
		composer:    composer,
		machine:     machine,
		assessor:    assessor,
		clock:       clock,
		uow:         uow,
		sessions:    sessions,
		transcripts: transcripts,
		assessments: assessments,
		observer:    useCaseObserverOrNoop(observers),
		active:      make(map[string]*liveSession),
	}
}

func (s *interviewService) Start(ctx context.Context, questionID string) (*StartResult, error) {
	start := s.clock.Now()

	q, ok := s.questions.Get(questionID)
	if !ok {
		err := fmt.Errorf("question %q: %w", questionID, repository.ErrNotFound)
		s.observe(ctx, "interview_start", start, err, nil)
		return nil, err
	}

	format := prompt.SelectFormat(q.Company)
	systemPrompt := s.composer.Compose(q, format)

	id := uuid.New().String()
	engineState := s.machine.NewSession(id, engine.PlanFor(q))

	opening := openingLine(q)
	engineState.Transcript.Append(domain.RoleInterviewer, opening, start)

	record := &domain.PracticeSession{
		ID:         id,
		QuestionID: q.ID,
		Track:      q.Track,
		Type:       q.Type,
		Format:     format,
		Status:     domain.SessionRunning,
		LastPhase:  string(engineState.Phase().ID),
		StartedAt:  start,
		CreatedAt:  start,
	}
	if err := s.sessions.Create(ctx, record); err != nil {
		s.observe(ctx, "interview_start", start, err, nil)
		return nil, err
	}

	s.mu.Lock()
	s.active[id] = &liveSession{
		state:        record,
		engine:       engineState,
		question:     q,
		systemPrompt: systemPrompt,
	}
	s.mu.Unlock()

	s.observe(ctx, "interview_start", start, nil, map[string]any{
		"session_id": id, "question_id": q.ID, "format": string(format),
	})
	return &StartResult{Session: record, SystemPrompt: systemPrompt, Opening: opening}, nil
}

func (s *interviewService) Advance(ctx context.Context, sessionID string, input engine.TurnInput) (engine.Directive, error) {
	live, err := s.lookup(sessionID)
	if err != nil {
		return engine.Directive{}, err
	}

	d := s.machine.Advance(live.engine, input)
	live.state.LastPhase = string(d.Phase)
	return d, nil
}

func (s *interviewService) Finish(ctx context.Context, sessionID string) (*domain.Assessment, error) {
	start := s.clock.Now()

	live, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	ended := s.clock.Now()
	record := live.state
	record.EndedAt = &ended
	record.DurationSeconds = int(ended.Sub(record.StartedAt).Seconds())
	record.Incomplete = live.engine.Incomplete || !live.engine.Done
	record.LastPhase = string(live.engine.Phase().ID)
	if live.engine.Done {
		record.Status = domain.SessionCompleted
	} else {
		record.Status = domain.SessionAbandoned
	}
	live.engine.Transcript.Incomplete = record.Incomplete

	var rub *rubric.Config
	if cfg, ok := s.rubrics.Get(live.question.Type); ok {
		rub = cfg
	}

	// Scoring runs outside the transaction: it may call out to a model
	// and must not hold a write lock while it does.
	assessment, err := s.assessor.Assess(ctx, live.question, rub, live.engine.Transcript)
	if err != nil {
		s.observe(ctx, "interview_finish", start, err, map[string]any{"session_id": sessionID})
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSessionRepo(tx).Update(ctx, record); err != nil {
			return err
		}
		if err := repository.NewSQLiteTranscriptRepo(tx).AppendEntries(ctx, sessionID, 0, live.engine.Transcript.Entries); err != nil {
			return err
		}
		return repository.NewSQLiteAssessmentRepo(tx).Create(ctx, assessment)
	})
	if err != nil {
		s.observe(ctx, "interview_finish", start, err, map[string]any{"session_id": sessionID})
		return nil, err
	}

	s.mu.Lock()
	delete(s.active, sessionID)
	s.mu.Unlock()

	s.observe(ctx, "interview_finish", start, nil, map[string]any{
		"session_id": sessionID,
		"status":     string(record.Status),
		"incomplete": record.Incomplete,
		"overall":    assessment.OverallScore,
	})
	return assessment, nil
}

func (s *interviewService) GetSession(ctx context.Context, id string) (*domain.PracticeSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *interviewService) ListSessions(ctx context.Context, limit int) ([]*domain.PracticeSession, error) {
	return s.sessions.List(ctx, limit)
}

func (s *interviewService) GetTranscript(ctx context.Context, sessionID string) (*domain.Transcript, error) {
	return s.transcripts.GetBySession(ctx, sessionID)
}

func (s *interviewService) GetAssessment(ctx context.Context, sessionID string) (*domain.Assessment, error) {
	return s.assessments.GetBySession(ctx, sessionID)
}

func (s *interviewService) lookup(sessionID string) (*liveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	live, ok := s.active[sessionID]
	if !ok {
		return nil, fmt.Errorf("no running session %q: %w", sessionID, repository.ErrNotFound)
	}
	return live, nil
}

func (s *interviewService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  s.clock.Now().Sub(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func openingLine(q *domain.Question) string {
	return fmt.Sprintf(
		"Thanks for joining today. We'll work through a %s case: %s. Before we dive in, tell me a little about yourself.",
		string(q.Type), q.Title)
}
