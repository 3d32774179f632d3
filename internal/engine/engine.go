package engine

import (
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// InputKind classifies what the caller is feeding into the machine.
type InputKind string

const (
	InputUtterance InputKind = "utterance" // a new candidate utterance
	InputTick      InputKind = "tick"      // a timer signal, no candidate input
	InputSkip      InputKind = "skip"      // explicit skip directive from the candidate
)

// TurnInput is one unit of work for Advance.
type TurnInput struct {
	Kind InputKind
	Text string
}

// DirectiveKind classifies the engine's output for one turn.
type DirectiveKind string

const (
	DirectiveProbe      DirectiveKind = "probe"
	DirectiveTransition DirectiveKind = "transition"
	DirectiveAck        DirectiveKind = "ack"
	DirectiveSilence    DirectiveKind = "silence"
	DirectiveCheckIn    DirectiveKind = "check_in"
	DirectiveClarify    DirectiveKind = "clarify"
	DirectiveNudge      DirectiveKind = "nudge"
	DirectiveChallenge  DirectiveKind = "challenge"
	DirectiveRedirect   DirectiveKind = "redirect"
	DirectiveRecount    DirectiveKind = "recount"
	DirectiveWrapUp     DirectiveKind = "wrap_up"
)

// Directive is the engine's instruction for what the interviewer does
// next. Silence directives carry no text and are not recorded on the
// transcript.
type Directive struct {
	Kind       DirectiveKind
	Text       string
	Phase      PhaseID
	Done       bool
	Incomplete bool
}

// Engine drives interview sessions through their phase plans. It is
// stateless across sessions: all per-session state lives in the
// SessionState it is handed.
type Engine struct {
	cfg      Config
	analyzer Analyzer
	clock    Clock
	rng      *rand.Rand
	logger   *slog.Logger
}

// NewEngine creates an Engine. clock and rng are injectable for
// deterministic tests; nil selects the system clock and a time-seeded
// source.
func NewEngine(cfg Config, analyzer Analyzer, clock Clock, rng *rand.Rand, logger *slog.Logger) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, analyzer: analyzer, clock: clock, rng: rng, logger: logger}
}

// NewSession creates session state positioned at the plan's first phase.
func (e *Engine) NewSession(sessionID string, plan Plan) *SessionState {
	return NewSessionState(sessionID, plan, e.clock.Now())
}

// Advance processes one input for one session. It never fails: every
// malformed or stalled input maps to an interrupt directive, and the
// only hard stop is the session duration ceiling.
func (e *Engine) Advance(s *SessionState, input TurnInput) Directive {
	now := e.clock.Now()

	if s.Done {
		return Directive{Kind: DirectiveWrapUp, Phase: s.Phase().ID, Done: true, Incomplete: s.Incomplete}
	}

	if now.Sub(s.StartedAt) >= e.cfg.MaxSession {
		return e.forceWrapUp(s, now)
	}

	switch input.Kind {
	case InputTick:
		return e.handleTick(s, now)
	case InputSkip:
		return e.skipPhase(s, now)
	default:
		return e.handleUtterance(s, input.Text, now)
	}
}

// handleUtterance applies the interrupt precedence order
// CLARIFY_AUDIO > THINKING_PAUSE > CHALLENGE > NUDGE > REDIRECT,
// then evaluates the phase exit criterion.
func (e *Engine) handleUtterance(s *SessionState, text string, now time.Time) Directive {
	s.Transcript.Append(domain.RoleCandidate, text, now)
	s.Turns++
	s.LastActivityAt = now

	sig := e.analyzer.Analyze(text, s.Phase())

	if sig.Unintelligible {
		return e.clarify(s, text, now)
	}
	s.ClarifyLevel = 0

	if sig.PauseRequested {
		s.Paused = true
		s.PauseAckAt = now
		s.CheckedIn = false
		return e.respond(s, now, DirectiveAck, s.pickPhrase(e.rng, phrasePauseAck))
	}
	s.Paused = false

	if sig.SkipRequested {
		return e.skipPhase(s, now)
	}

	s.RecordEntities(sig.Entities)

	if sig.ClaimedCount > 0 {
		kind := s.Phase().Exit.EntityKind
		if len(sig.Entities) > 0 {
			kind = sig.Entities[0].Kind
		}
		if caught := s.DistinctFacts(kind); caught < sig.ClaimedCount {
			// The claim exceeds what the whole transcript recovers so
			// far; ask for a recount. Delays phase exit, never fails
			// the session.
			s.PhaseTurns++
			return e.respond(s, now, DirectiveRecount,
				s.pickPhrase(e.rng, phraseRecount, sig.ClaimedCount, caught))
		}
	}

	if sig.StatesChoice && sig.ReasonCount >= 2 {
		s.ChoiceMade = true
	}

	phase := s.Phase()
	if phase.RequiresChallenge {
		if !s.ChallengeIssued && sig.StatesChoice && sig.ReasonCount >= 1 {
			s.ChallengeIssued = true
			s.PhaseTurns++
			return e.respond(s, now, DirectiveChallenge, e.challengeText(s, sig.Choice, phase))
		}
		if s.ChallengeIssued && !s.ChallengeDefended && sig.ReasonCount >= 1 {
			// An adequate defense both survives the pushback and counts
			// as the committed choice.
			s.ChallengeDefended = true
			s.ChoiceMade = true
		}
	}

	if sig.OffTopic {
		// Logged as a deviation; phase and phase turn counter unchanged.
		e.logger.Info("off-topic deviation", "session", s.SessionID, "phase", string(phase.ID))
		return e.respond(s, now, DirectiveRedirect, s.pickPhrase(e.rng, phraseRedirect, strings.ToLower(phase.Name)))
	}

	s.PhaseTurns++

	if s.exitSatisfied() && !s.Plan.Terminal(s.PhaseIdx) {
		s.advancePhase(now)
		if s.Plan.Terminal(s.PhaseIdx) {
			return e.wrapUp(s, now, false)
		}
		return e.respond(s, now, DirectiveTransition,
			s.pickPhrase(e.rng, phraseTransition, strings.ToLower(s.Phase().Name)))
	}

	return e.respond(s, now, DirectiveProbe, s.pickPhrase(e.rng, phraseProbe))
}

// handleTick services timer signals: the thinking-pause quiet window
// and the stall-nudge threshold.
func (e *Engine) handleTick(s *SessionState, now time.Time) Directive {
	if s.Paused {
		if !s.CheckedIn && now.Sub(s.PauseAckAt) >= e.cfg.QuietWindow {
			s.CheckedIn = true
			return e.respond(s, now, DirectiveCheckIn, s.pickPhrase(e.rng, phraseCheckIn))
		}
		// Inside the quiet window, or already checked in: stay silent.
		return Directive{Kind: DirectiveSilence, Phase: s.Phase().ID}
	}

	if now.Sub(s.LastActivityAt) >= e.cfg.StallThreshold {
		s.LastActivityAt = now // one nudge per stall, not one per tick
		return e.respond(s, now, DirectiveNudge, s.pickPhrase(e.rng, phraseNudge, e.hintFor(s.Phase())))
	}

	return Directive{Kind: DirectiveSilence, Phase: s.Phase().ID}
}

// clarify emits the graduated unclear-audio escalation.
func (e *Engine) clarify(s *SessionState, text string, now time.Time) Directive {
	if s.ClarifyLevel < 3 {
		s.ClarifyLevel++
	}
	switch s.ClarifyLevel {
	case 1:
		return e.respond(s, now, DirectiveClarify, s.pickPhrase(e.rng, phraseClarify1))
	case 2:
		return e.respond(s, now, DirectiveClarify, s.pickPhrase(e.rng, phraseClarify2))
	default:
		return e.respond(s, now, DirectiveClarify, s.pickPhrase(e.rng, phraseClarify3, bestGuess(text)))
	}
}

// skipPhase advances regardless of the exit criterion. The skipped
// criterion is a logged deviation, not an error.
func (e *Engine) skipPhase(s *SessionState, now time.Time) Directive {
	if s.Plan.Terminal(s.PhaseIdx) {
		return e.wrapUp(s, now, false)
	}
	e.logger.Info("phase skipped", "session", s.SessionID, "phase", string(s.Phase().ID))
	s.advancePhase(now)
	if s.Plan.Terminal(s.PhaseIdx) {
		return e.wrapUp(s, now, false)
	}
	return e.respond(s, now, DirectiveTransition,
		s.pickPhrase(e.rng, phraseTransition, strings.ToLower(s.Phase().Name)))
}

// forceWrapUp jumps straight to the terminal phase after the session
// ceiling is exhausted.
func (e *Engine) forceWrapUp(s *SessionState, now time.Time) Directive {
	e.logger.Info("session ceiling reached", "session", s.SessionID, "phase", string(s.Phase().ID))
	s.PhaseIdx = len(s.Plan) - 1
	s.PhaseEnteredAt = now
	return e.wrapUp(s, now, true)
}

func (e *Engine) wrapUp(s *SessionState, now time.Time, incomplete bool) Directive {
	s.Done = true
	s.Incomplete = incomplete
	s.Transcript.Incomplete = incomplete
	text := "We're at time. Thank you — let me share a couple of impressions before we close."
	s.Transcript.Append(domain.RoleInterviewer, text, now)
	return Directive{Kind: DirectiveWrapUp, Text: text, Phase: s.Phase().ID, Done: true, Incomplete: incomplete}
}

// respond records an interviewer utterance and packages the directive.
func (e *Engine) respond(s *SessionState, now time.Time, kind DirectiveKind, text string) Directive {
	s.Transcript.Append(domain.RoleInterviewer, text, now)
	return Directive{Kind: kind, Text: text, Phase: s.Phase().ID}
}

// challengeText builds the mandatory pushback, referencing a plausible
// alternative from the fact ledger when one exists.
func (e *Engine) challengeText(s *SessionState, choice string, phase PhaseSpec) string {
	chosen := normalizeEntity(choice)
	if chosen == "" {
		chosen = "that option"
	}
	alternative := ""
	for _, name := range s.FactNames(phase.ChallengeKind) {
		if name != chosen {
			alternative = name
			break
		}
	}
	if alternative == "" {
		alternative = "one of the options you set aside"
	}
	return s.pickPhrase(e.rng, phraseChallenge, chosen, alternative)
}

// hintFor picks a phase-scoped hint. Hints guide without revealing the
// phase's answer.
func (e *Engine) hintFor(phase PhaseSpec) string {
	if len(phase.Hints) == 0 {
		return "Take the next step from where you left off."
	}
	return phase.Hints[e.rng.Intn(len(phase.Hints))]
}

// bestGuess truncates a garbled utterance for the level-3 confirm-back.
func bestGuess(text string) string {
	words := strings.Fields(text)
	if len(words) > 12 {
		words = words[:12]
	}
	guess := strings.Join(words, " ")
	if guess == "" {
		guess = "something I couldn't make out"
	}
	return guess
}
