package engine

import (
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// SessionState is the run-time state of one interview. It is exclusively
// owned by its session: exactly one utterance is processed at a time and
// no state is shared across sessions, so no locking is needed.
type SessionState struct {
	SessionID  string
	Plan       Plan
	Transcript *domain.Transcript

	PhaseIdx       int
	PhaseEnteredAt time.Time
	StartedAt      time.Time
	Turns          int // total candidate turns processed
	PhaseTurns     int // candidate turns counted toward the current phase

	// Session-wide fact ledger: distinct normalized entity names per kind.
	Facts map[EntityKind]map[string]bool

	// Per-phase interrupt state, reset on every phase advance.
	ChallengeIssued   bool
	ChallengeDefended bool
	ChoiceMade        bool
	ClarifyLevel      int // 0 = clean, 1..3 = escalation level

	// Thinking-pause state.
	Paused     bool
	PauseAckAt time.Time
	CheckedIn  bool

	LastActivityAt time.Time

	// Recently used phrases per category, for the variety constraint.
	recentPhrases map[string][]string

	Done       bool
	Incomplete bool
}

// NewSessionState creates the state for a fresh session positioned at
// the plan's first phase.
func NewSessionState(sessionID string, plan Plan, startedAt time.Time) *SessionState {
	return &SessionState{
		SessionID:      sessionID,
		Plan:           plan,
		Transcript:     &domain.Transcript{SessionID: sessionID},
		PhaseEnteredAt: startedAt,
		StartedAt:      startedAt,
		LastActivityAt: startedAt,
		Facts:          make(map[EntityKind]map[string]bool),
		recentPhrases:  make(map[string][]string),
	}
}

// Phase returns the current phase spec.
func (s *SessionState) Phase() PhaseSpec { return s.Plan[s.PhaseIdx] }

// RecordEntities merges entities into the session fact ledger and
// reports how many were new.
func (s *SessionState) RecordEntities(entities []Entity) int {
	added := 0
	for _, e := range entities {
		name := normalizeEntity(e.Name)
		if name == "" {
			continue
		}
		if s.Facts[e.Kind] == nil {
			s.Facts[e.Kind] = make(map[string]bool)
		}
		if !s.Facts[e.Kind][name] {
			s.Facts[e.Kind][name] = true
			added++
		}
	}
	return added
}

// DistinctFacts counts distinct recorded entities of a kind.
func (s *SessionState) DistinctFacts(kind EntityKind) int {
	return len(s.Facts[kind])
}

// FactNames returns the recorded entity names of a kind, unordered.
func (s *SessionState) FactNames(kind EntityKind) []string {
	out := make([]string, 0, len(s.Facts[kind]))
	for name := range s.Facts[kind] {
		out = append(out, name)
	}
	return out
}

// exitSatisfied evaluates the current phase's exit criterion against
// the fact ledger, including the mandatory-challenge gate.
func (s *SessionState) exitSatisfied() bool {
	phase := s.Phase()
	crit := phase.Exit
	if s.PhaseTurns < crit.MinCandidateTurns {
		return false
	}
	if crit.MinDistinct > 0 && s.DistinctFacts(crit.EntityKind) < crit.MinDistinct {
		return false
	}
	if crit.RequiresChoice && !s.ChoiceMade {
		return false
	}
	if phase.RequiresChallenge && !s.ChallengeDefended {
		return false
	}
	return true
}

// advancePhase moves to the next phase and resets per-phase state.
// Callers must not invoke it on the terminal phase.
func (s *SessionState) advancePhase(now time.Time) {
	s.PhaseIdx++
	s.PhaseEnteredAt = now
	s.PhaseTurns = 0
	s.ChallengeIssued = false
	s.ChallengeDefended = false
	s.ChoiceMade = false
	s.ClarifyLevel = 0
}
