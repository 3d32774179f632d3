package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// whole list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS practice_sessions (
		id               TEXT PRIMARY KEY,
		question_id      TEXT NOT NULL,
		track            TEXT NOT NULL,
		question_type    TEXT NOT NULL,
		format           TEXT NOT NULL CHECK(format IN ('interviewer-led','candidate-led')),
		status           TEXT NOT NULL CHECK(status IN ('running','completed','abandoned')),
		last_phase       TEXT NOT NULL DEFAULT '',
		started_at       TEXT NOT NULL,
		ended_at         TEXT,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		incomplete       INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS transcript_entries (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL REFERENCES practice_sessions(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		role       TEXT NOT NULL CHECK(role IN ('interviewer','candidate')),
		text       TEXT NOT NULL,
		at         TEXT NOT NULL,
		UNIQUE(session_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_transcript_entries_session
		ON transcript_entries(session_id)`,

	`CREATE TABLE IF NOT EXISTS assessments (
		id               TEXT PRIMARY KEY,
		session_id       TEXT NOT NULL REFERENCES practice_sessions(id) ON DELETE CASCADE,
		dimension_scores TEXT NOT NULL,
		overall_score    REAL NOT NULL,
		feedback         TEXT NOT NULL,
		source           TEXT NOT NULL CHECK(source IN ('llm','heuristic')),
		created_at       TEXT NOT NULL,
		UNIQUE(session_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_practice_sessions_status
		ON practice_sessions(status)`,
}
