package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/testutil"
)

func TestAssessmentRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	repo := NewSQLiteAssessmentRepo(database)

	s := testutil.NewTestSession()
	require.NoError(t, sessions.Create(context.Background(), s))

	a := testutil.NewTestAssessment(s.ID)
	require.NoError(t, repo.Create(context.Background(), a))

	got, err := repo.GetBySession(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, 4, got.DimensionScores["Structure"])
	assert.Equal(t, 3, got.DimensionScores["Communication"])
	assert.InDelta(t, 3.6, got.OverallScore, 0.001)
	assert.Equal(t, domain.AssessmentSourceHeuristic, got.Source)
}

func TestAssessmentRepo_GetBySession_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(database)

	_, err := repo.GetBySession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssessmentRepo_OnePerSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	repo := NewSQLiteAssessmentRepo(database)

	s := testutil.NewTestSession()
	require.NoError(t, sessions.Create(context.Background(), s))

	require.NoError(t, repo.Create(context.Background(), testutil.NewTestAssessment(s.ID)))
	err := repo.Create(context.Background(), testutil.NewTestAssessment(s.ID))
	assert.Error(t, err, "a session is scored exactly once")
}

func TestAssessmentRepo_OrphanRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAssessmentRepo(database)

	err := repo.Create(context.Background(), testutil.NewTestAssessment("ghost"))
	assert.Error(t, err, "assessments require an existing session")
}
