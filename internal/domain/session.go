package domain

import "time"

// PracticeSession is the persistence record for one interview session.
type PracticeSession struct {
	ID              string
	QuestionID      string
	Track           Track
	Type            QuestionType
	Format          InterviewFormat
	Status          SessionStatus
	LastPhase       string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds int
	Incomplete      bool
	CreatedAt       time.Time
}
