package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo using a SQLite database.
type SQLiteTranscriptRepo struct {
	db db.DBTX
}

// NewSQLiteTranscriptRepo creates a new SQLiteTranscriptRepo.
func NewSQLiteTranscriptRepo(dbtx db.DBTX) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: dbtx}
}

func (r *SQLiteTranscriptRepo) AppendEntries(ctx context.Context, sessionID string, startSeq int, entries []domain.TranscriptEntry) error {
	query := `INSERT INTO transcript_entries (session_id, seq, role, text, at)
		VALUES (?, ?, ?, ?, ?)`
	for i, e := range entries {
		_, err := r.db.ExecContext(ctx, query,
			sessionID,
			startSeq+i,
			string(e.Role),
			e.Text,
			e.At.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting transcript entry %d: %w", startSeq+i, err)
		}
	}
	return nil
}

func (r *SQLiteTranscriptRepo) GetBySession(ctx context.Context, sessionID string) (*domain.Transcript, error) {
	query := `SELECT role, text, at FROM transcript_entries
		WHERE session_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading transcript: %w", err)
	}
	defer rows.Close()

	tr := &domain.Transcript{SessionID: sessionID}
	for rows.Next() {
		var role, text, atStr string
		if err := rows.Scan(&role, &text, &atStr); err != nil {
			return nil, fmt.Errorf("scanning transcript entry: %w", err)
		}
		at, parseErr := time.Parse(time.RFC3339, atStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing entry time: %w", parseErr)
		}
		tr.Entries = append(tr.Entries, domain.TranscriptEntry{
			Role: domain.Role(role),
			Text: text,
			At:   at,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcript entries: %w", err)
	}
	return tr, nil
}
