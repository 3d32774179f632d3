package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/caseflow/internal/catalog"
	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/engine"
	"github.com/alexanderramin/caseflow/internal/intelligence"
	"github.com/alexanderramin/caseflow/internal/prompt"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/alexanderramin/caseflow/internal/rubric"
	"github.com/alexanderramin/caseflow/internal/testutil"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(string, engine.PhaseSpec) engine.Signals { return engine.Signals{} }

type stubAssessor struct {
	err error
}

func (a stubAssessor) Assess(_ context.Context, _ *domain.Question, _ *rubric.Config, tr *domain.Transcript) (*domain.Assessment, error) {
	if a.err != nil {
		return nil, a.err
	}
	return &domain.Assessment{
		ID:              uuid.New().String(),
		SessionID:       tr.SessionID,
		DimensionScores: map[string]int{"Structure": 4, "Communication": 3},
		OverallScore:    3.6,
		Feedback:        "Solid structure, tighten the communication.",
		Source:          domain.AssessmentSourceHeuristic,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func newTestService(t *testing.T, database *sql.DB, uow db.UnitOfWork) InterviewService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	questions, err := catalog.New()
	require.NoError(t, err)
	rubrics, err := rubric.NewStore()
	require.NoError(t, err)
	composer, err := prompt.NewComposer(rubrics, logger)
	require.NoError(t, err)

	machine := engine.NewEngine(engine.DefaultEngineConfig(), stubAnalyzer{}, nil,
		rand.New(rand.NewSource(1)), logger)

	return NewInterviewService(
		questions, rubrics, composer, machine, stubAssessor{}, nil,
		uow,
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteTranscriptRepo(database),
		repository.NewSQLiteAssessmentRepo(database),
	)
}

// skipToDone drives a running session through its remaining phases.
func skipToDone(t *testing.T, svc InterviewService, sessionID string) {
	t.Helper()
	for i := 0; i < 20; i++ {
		d, err := svc.Advance(context.Background(), sessionID, engine.TurnInput{Kind: engine.InputSkip})
		require.NoError(t, err)
		if d.Done {
			return
		}
	}
	t.Fatal("session did not finish within 20 skips")
}

func TestStart_UnknownQuestion(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	_, err := svc.Start(context.Background(), "no-such-question")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStart_PersistsRunningSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	res, err := svc.Start(context.Background(), "cons-prof-coffee")
	require.NoError(t, err)

	assert.NotEmpty(t, res.SystemPrompt)
	assert.Contains(t, res.Opening, "Declining margins at a coffee chain")

	got, err := svc.GetSession(context.Background(), res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionRunning, got.Status)
	assert.Equal(t, domain.TrackConsulting, got.Track)
	assert.Equal(t, domain.TypeProfitability, got.Type)
	assert.Equal(t, "INTRO", got.LastPhase)
	assert.Nil(t, got.EndedAt)
}

func TestStart_FormatFollowsCompany(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	// McKinsey runs interviewer-led cases.
	res, err := svc.Start(context.Background(), "cons-prof-coffee")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatInterviewerLed, res.Session.Format)

	res, err = svc.Start(context.Background(), "cons-prof-airline")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatCandidateLed, res.Session.Format)
}

func TestAdvance_DrivesEngine(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	res, err := svc.Start(context.Background(), "cons-prof-coffee")
	require.NoError(t, err)

	d, err := svc.Advance(context.Background(), res.Session.ID, engine.TurnInput{
		Kind: engine.InputUtterance,
		Text: "Hi, I'm a consultant with five years in retail.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.Kind)
	assert.NotEmpty(t, d.Phase)
	assert.False(t, d.Done)
}

func TestAdvance_UnknownSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	_, err := svc.Advance(context.Background(), "ghost", engine.TurnInput{Kind: engine.InputTick})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFinish_CompletedSessionPersistsEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	res, err := svc.Start(context.Background(), "cons-prof-coffee")
	require.NoError(t, err)
	id := res.Session.ID
	skipToDone(t, svc, id)

	assessment, err := svc.Finish(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 3.6, assessment.OverallScore, 0.001)

	got, err := svc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, got.Status)
	assert.Equal(t, "WRAP_UP", got.LastPhase)
	assert.False(t, got.Incomplete)
	require.NotNil(t, got.EndedAt)

	tr, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, tr.Entries)
	assert.Equal(t, domain.RoleInterviewer, tr.Entries[0].Role)

	stored, err := svc.GetAssessment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, assessment.ID, stored.ID)

	// The live session is gone once it has been flushed.
	_, err = svc.Finish(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFinish_EarlyExitIsAbandoned(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	res, err := svc.Start(context.Background(), "pm-sense-seniors")
	require.NoError(t, err)
	id := res.Session.ID

	_, err = svc.Advance(context.Background(), id, engine.TurnInput{
		Kind: engine.InputUtterance,
		Text: "Actually, I have to run. Sorry.",
	})
	require.NoError(t, err)

	_, err = svc.Finish(context.Background(), id)
	require.NoError(t, err)

	got, err := svc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionAbandoned, got.Status)
	assert.True(t, got.Incomplete)
}

func TestFinish_RollbackLeavesSessionRunning(t *testing.T) {
	database := testutil.NewTestDB(t)
	failing := &testutil.FailingUoW{Inner: testutil.NewTestUoW(database), FailOnNth: 1}
	svc := newTestService(t, database, failing)

	res, err := svc.Start(context.Background(), "cons-prof-coffee")
	require.NoError(t, err)
	id := res.Session.ID
	skipToDone(t, svc, id)

	_, err = svc.Finish(context.Background(), id)
	require.ErrorIs(t, err, testutil.ErrForcedFailure)

	got, err := svc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionRunning, got.Status, "rolled-back finish leaves the stored row untouched")

	tr, err := svc.GetTranscript(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, tr.Entries)

	_, err = svc.GetAssessment(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The session stays live, so a retry can still land everything.
	_, err = svc.Finish(context.Background(), id)
	require.NoError(t, err)

	got, err = svc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, got.Status)
}

func TestListSessions_RespectsLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(t, database, testutil.NewTestUoW(database))

	_, err := svc.Start(context.Background(), "cons-prof-coffee")
	require.NoError(t, err)
	_, err = svc.Start(context.Background(), "pm-sense-seniors")
	require.NoError(t, err)

	got, err := svc.ListSessions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	one, err := svc.ListSessions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
}

func TestObserver_ReceivesLifecycleEvents(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	questions, err := catalog.New()
	require.NoError(t, err)
	rubrics, err := rubric.NewStore()
	require.NoError(t, err)
	composer, err := prompt.NewComposer(rubrics, logger)
	require.NoError(t, err)
	machine := engine.NewEngine(engine.DefaultEngineConfig(), stubAnalyzer{}, nil,
		rand.New(rand.NewSource(1)), logger)

	rec := &recordingObserver{}
	svc := NewInterviewService(
		questions, rubrics, composer, machine, stubAssessor{}, nil, uow,
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteTranscriptRepo(database),
		repository.NewSQLiteAssessmentRepo(database),
		rec,
	)

	res, err := svc.Start(context.Background(), "cons-prof-coffee")
	require.NoError(t, err)
	skipToDone(t, svc, res.Session.ID)
	_, err = svc.Finish(context.Background(), res.Session.ID)
	require.NoError(t, err)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "interview_start", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, "interview_finish", rec.events[1].Name)
	assert.True(t, rec.events[1].Success)
	assert.Equal(t, string(domain.SessionCompleted), rec.events[1].Fields["status"])
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

var _ intelligence.Assessor = stubAssessor{}
