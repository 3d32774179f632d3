package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/caseflow/internal/db"
	"github.com/alexanderramin/caseflow/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
// Dimension scores are stored as a JSON object keyed by dimension name.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(dbtx db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: dbtx}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, a *domain.Assessment) error {
	scores, err := json.Marshal(a.DimensionScores)
	if err != nil {
		return fmt.Errorf("encoding dimension scores: %w", err)
	}

	query := `INSERT INTO assessments (id, session_id, dimension_scores, overall_score, feedback, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.SessionID,
		string(scores),
		a.OverallScore,
		a.Feedback,
		string(a.Source),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetBySession(ctx context.Context, sessionID string) (*domain.Assessment, error) {
	query := `SELECT id, session_id, dimension_scores, overall_score, feedback, source, created_at
		FROM assessments WHERE session_id = ?`
	row := r.db.QueryRowContext(ctx, query, sessionID)

	var a domain.Assessment
	var scoresJSON, source, createdAtStr string
	err := row.Scan(&a.ID, &a.SessionID, &scoresJSON, &a.OverallScore, &a.Feedback, &source, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	if err := json.Unmarshal([]byte(scoresJSON), &a.DimensionScores); err != nil {
		return nil, fmt.Errorf("decoding dimension scores: %w", err)
	}
	a.Source = domain.AssessmentSource(source)
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}
