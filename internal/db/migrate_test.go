package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"practice_sessions", "transcript_entries", "assessments"} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s must exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, Migrate(conn))
	assert.NoError(t, Migrate(conn))
}

func TestOpenDB_ForeignKeysEnforced(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(
		`INSERT INTO transcript_entries (session_id, seq, role, text, at)
		 VALUES ('no-such-session', 0, 'candidate', 'hi', '2025-06-01T09:00:00Z')`)
	assert.Error(t, err, "orphan transcript rows must be rejected")
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	uow := NewSQLiteUnitOfWork(conn)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO practice_sessions (id, question_id, track, question_type, format, status, started_at, created_at)
			 VALUES ('s-1', 'q-1', 'consulting', 'profitability', 'interviewer-led', 'running',
			         '2025-06-01T09:00:00Z', '2025-06-01T09:00:00Z')`)
		require.NoError(t, err)
		return assert.AnError
	})
	require.Error(t, err)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM practice_sessions`).Scan(&count))
	assert.Equal(t, 0, count, "failed unit of work leaves no rows behind")
}

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	uow := NewSQLiteUnitOfWork(conn)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO practice_sessions (id, question_id, track, question_type, format, status, started_at, created_at)
			 VALUES ('s-1', 'q-1', 'consulting', 'profitability', 'interviewer-led', 'running',
			         '2025-06-01T09:00:00Z', '2025-06-01T09:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM practice_sessions`).Scan(&count))
	assert.Equal(t, 1, count)
}
