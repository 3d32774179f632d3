package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. The handle may
// be a *sql.DB or a transaction from a unit of work.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

const sessionColumns = `id, question_id, track, question_type, format, status,
	last_phase, started_at, ended_at, duration_seconds, incomplete, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.PracticeSession) error {
	query := `INSERT INTO practice_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.QuestionID,
		string(s.Track),
		string(s.Type),
		string(s.Format),
		string(s.Status),
		s.LastPhase,
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		s.DurationSeconds,
		boolToInt(s.Incomplete),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting practice session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.PracticeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM practice_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) List(ctx context.Context, limit int) ([]*domain.PracticeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM practice_sessions
		ORDER BY started_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing practice sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.PracticeSession) error {
	query := `UPDATE practice_sessions
		SET status = ?, last_phase = ?, ended_at = ?, duration_seconds = ?, incomplete = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(s.Status),
		s.LastPhase,
		nullableTimeToString(s.EndedAt, time.RFC3339),
		s.DurationSeconds,
		boolToInt(s.Incomplete),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating practice session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("practice session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM practice_sessions WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting practice session: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.PracticeSession, error) {
	var s domain.PracticeSession
	var track, qtype, format, status string
	var startedAtStr, createdAtStr string
	var endedAtStr sql.NullString
	var incomplete int

	err := row.Scan(
		&s.ID, &s.QuestionID, &track, &qtype, &format, &status,
		&s.LastPhase, &startedAtStr, &endedAtStr, &s.DurationSeconds, &incomplete, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("practice session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning practice session: %w", err)
	}

	return r.populateSession(&s, track, qtype, format, status, startedAtStr, createdAtStr, endedAtStr, incomplete)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.PracticeSession, error) {
	var sessions []*domain.PracticeSession
	for rows.Next() {
		var s domain.PracticeSession
		var track, qtype, format, status string
		var startedAtStr, createdAtStr string
		var endedAtStr sql.NullString
		var incomplete int

		err := rows.Scan(
			&s.ID, &s.QuestionID, &track, &qtype, &format, &status,
			&s.LastPhase, &startedAtStr, &endedAtStr, &s.DurationSeconds, &incomplete, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, track, qtype, format, status, startedAtStr, createdAtStr, endedAtStr, incomplete)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.PracticeSession, track, qtype, format, status, startedAtStr, createdAtStr string, endedAtStr sql.NullString, incomplete int) (*domain.PracticeSession, error) {
	s.Track = domain.Track(track)
	s.Type = domain.QuestionType(qtype)
	s.Format = domain.InterviewFormat(format)
	s.Status = domain.SessionStatus(status)
	s.Incomplete = intToBool(incomplete)

	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.EndedAt = parseNullableTime(endedAtStr, time.RFC3339)

	return s, nil
}
