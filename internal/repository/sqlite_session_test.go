package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/testutil"
)

func TestSessionRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)

	s := testutil.NewTestSession()
	require.NoError(t, repo.Create(context.Background(), s))

	got, err := repo.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, domain.TrackConsulting, got.Track)
	assert.Equal(t, domain.TypeProfitability, got.Type)
	assert.Equal(t, domain.FormatInterviewerLed, got.Format)
	assert.Equal(t, domain.SessionRunning, got.Status)
	assert.True(t, s.StartedAt.Equal(got.StartedAt))
	assert.Nil(t, got.EndedAt)
	assert.False(t, got.Incomplete)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Update_Completion(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)

	s := testutil.NewTestSession()
	require.NoError(t, repo.Create(context.Background(), s))

	ended := s.StartedAt.Add(32 * time.Minute)
	s.Status = domain.SessionCompleted
	s.LastPhase = "WRAP_UP"
	s.EndedAt = &ended
	s.DurationSeconds = 1920
	s.Incomplete = true
	require.NoError(t, repo.Update(context.Background(), s))

	got, err := repo.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, got.Status)
	assert.Equal(t, "WRAP_UP", got.LastPhase)
	require.NotNil(t, got.EndedAt)
	assert.True(t, ended.Equal(*got.EndedAt))
	assert.Equal(t, 1920, got.DurationSeconds)
	assert.True(t, got.Incomplete)
}

func TestSessionRepo_Update_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)

	s := testutil.NewTestSession()
	err := repo.Update(context.Background(), s)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_List_NewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)

	old := testutil.NewTestSession()
	old.StartedAt = old.StartedAt.Add(-2 * time.Hour)
	recent := testutil.NewTestSession()

	require.NoError(t, repo.Create(context.Background(), old))
	require.NoError(t, repo.Create(context.Background(), recent))

	got, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, recent.ID, got[0].ID)

	one, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestSessionRepo_Delete_CascadesTranscript(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	transcripts := NewSQLiteTranscriptRepo(database)

	s := testutil.NewTestSession()
	require.NoError(t, sessions.Create(context.Background(), s))

	tr := testutil.NewTestTranscript(s.ID, "I'd size the market top down.")
	require.NoError(t, transcripts.AppendEntries(context.Background(), s.ID, 0, tr.Entries))

	require.NoError(t, sessions.Delete(context.Background(), s.ID))

	got, err := transcripts.GetBySession(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Entries, "transcript rows follow their session")
}
