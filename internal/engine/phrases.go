package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// Phrase categories. Each maps to a set of semantically-equivalent
// options; the engine rotates through them so the interviewer never
// repeats itself back to back.
const (
	phraseTransition = "transition"
	phrasePauseAck   = "pause_ack"
	phraseCheckIn    = "check_in"
	phraseNudge      = "nudge"
	phraseRedirect   = "redirect"
	phraseRecount    = "recount"
	phraseChallenge  = "challenge"
	phraseProbe      = "probe"
	phraseClarify1   = "clarify_1"
	phraseClarify2   = "clarify_2"
	phraseClarify3   = "clarify_3"
)

var phraseSets = map[string][]string{
	phraseTransition: {
		"Good. Let's move on to %s.",
		"That works. Next up: %s.",
		"All right, let's shift to %s.",
		"Solid. Now I'd like to cover %s.",
	},
	phrasePauseAck: {
		"Of course, take your time.",
		"Sure, take a moment.",
		"No rush. I'll wait.",
	},
	phraseCheckIn: {
		"How is it coming along?",
		"Where are you landing so far?",
		"Want to talk me through where you are?",
	},
	phraseNudge: {
		"Let me offer a small prompt: %s",
		"A nudge, if it helps: %s",
		"One direction you could consider: %s",
	},
	phraseRedirect: {
		"Let's bring it back to the question at hand: %s.",
		"Interesting, but let's stay on %s for now.",
		"I'd like to keep us focused on %s.",
	},
	// Recount templates all take (claimed, caught) in that order.
	phraseRecount: {
		"You mentioned %d items but I only caught %d. Could you run through them again?",
		"You counted %d but I have %d. Mind listing them once more?",
	},
	phraseChallenge: {
		"Before we settle on %s, a case could be made for %s instead. Why not that?",
		"Let me push back: wouldn't %s be the weaker pick compared with %s?",
	},
	phraseProbe: {
		"Go on.",
		"Tell me more.",
		"What else?",
		"And what follows from that?",
	},
	phraseClarify1: {
		"Sorry, I didn't catch that. Could you repeat it?",
		"I missed that. Could you say it again?",
	},
	phraseClarify2: {
		"I'm still not getting it. Could you repeat that a bit more slowly?",
		"Once more, slowly, please.",
	},
	phraseClarify3: {
		"Let me check my understanding: I believe you said %s. Is that right?",
		"To confirm, I heard this as: %s. Did I get that right?",
	},
}

// pickPhrase selects a phrase from a category, avoiding the most
// recently used options for that category in this session. The
// exclusion ring is per-session, never global.
func (s *SessionState) pickPhrase(rng *rand.Rand, category string, args ...any) string {
	set := phraseSets[category]
	if len(set) == 0 {
		return ""
	}

	recent := s.recentPhrases[category]
	candidates := make([]string, 0, len(set))
	for _, p := range set {
		if !containsPhrase(recent, p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = set
	}

	chosen := candidates[rng.Intn(len(candidates))]

	ringSize := len(set) - 1
	if ringSize > 2 {
		ringSize = 2
	}
	if ringSize > 0 {
		recent = append(recent, chosen)
		if len(recent) > ringSize {
			recent = recent[len(recent)-ringSize:]
		}
		s.recentPhrases[category] = recent
	}

	if len(args) > 0 {
		return fmt.Sprintf(chosen, args...)
	}
	return chosen
}

func containsPhrase(list []string, p string) bool {
	for _, x := range list {
		if x == p {
			return true
		}
	}
	return false
}

func normalizeEntity(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(name, ".,;:!?")))
}
