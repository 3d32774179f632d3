package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
)

// TranscriptEntry is one utterance in a session transcript.
type TranscriptEntry struct {
	Role Role
	Text string
	At   time.Time
}

// Transcript is the append-only record of one session's exchange.
// It is exclusively owned by its session for the session's lifetime.
type Transcript struct {
	SessionID  string
	Entries    []TranscriptEntry
	Incomplete bool
}

// Append records one utterance at the given time.
func (t *Transcript) Append(role Role, text string, at time.Time) {
	t.Entries = append(t.Entries, TranscriptEntry{Role: role, Text: text, At: at})
}

// CandidateTurns counts candidate utterances recorded so far.
func (t *Transcript) CandidateTurns() int {
	n := 0
	for _, e := range t.Entries {
		if e.Role == RoleCandidate {
			n++
		}
	}
	return n
}

// LastCandidateAt returns the time of the most recent candidate entry,
// or the zero time if the candidate has not spoken yet.
func (t *Transcript) LastCandidateAt() time.Time {
	for i := len(t.Entries) - 1; i >= 0; i-- {
		if t.Entries[i].Role == RoleCandidate {
			return t.Entries[i].At
		}
	}
	return time.Time{}
}

// Render returns a plain-text rendering of the transcript, one line per
// entry, suitable for feeding to an assessment prompt.
func (t *Transcript) Render() string {
	var b strings.Builder
	for _, e := range t.Entries {
		b.WriteString(string(e.Role))
		b.WriteString(": ")
		b.WriteString(e.Text)
		b.WriteString("\n")
	}
	return b.String()
}
