package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/rubric"
)

// Default dimension set when no rubric exists for the question type.
var genericDimensions = []string{"Structure", "Communication", "Judgment"}

// DeterministicAssessment scores a transcript without a model, from its
// observable shape: how much the candidate engaged and whether the
// session ran to completion. It is intentionally coarse; its job is to
// always produce a valid assessment, not a nuanced one.
func DeterministicAssessment(tr *domain.Transcript, rub *rubric.Config) *domain.Assessment {
	turns := tr.CandidateTurns()
	avgWords := averageCandidateWords(tr)

	base := 3
	if turns >= 8 && avgWords >= 20 {
		base = 4
	}
	if turns < 3 || avgWords < 8 {
		base = 2
	}
	if tr.Incomplete && base > 2 {
		base--
	}

	names := genericDimensions
	if rub != nil {
		names = rub.DimensionNames()
	}
	scores := make(map[string]int, len(names))
	for _, name := range names {
		scores[name] = base
	}

	return &domain.Assessment{
		ID:              uuid.NewString(),
		SessionID:       tr.SessionID,
		DimensionScores: scores,
		OverallScore:    weightedOverall(scores, rub),
		Feedback:        deterministicFeedback(turns, avgWords, tr.Incomplete),
		Source:          domain.AssessmentSourceHeuristic,
		CreatedAt:       time.Now().UTC(),
	}
}

func averageCandidateWords(tr *domain.Transcript) int {
	turns, words := 0, 0
	for _, e := range tr.Entries {
		if e.Role != domain.RoleCandidate {
			continue
		}
		turns++
		words += len(strings.Fields(e.Text))
	}
	if turns == 0 {
		return 0
	}
	return words / turns
}

func deterministicFeedback(turns, avgWords int, incomplete bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You completed %d substantive turns, averaging %d words each. ", turns, avgWords)
	switch {
	case avgWords < 8:
		b.WriteString("Your answers ran short; practice expanding each point into a structured mini-argument. ")
	case avgWords > 80:
		b.WriteString("Your answers ran long; practice leading with the headline and trimming detail. ")
	default:
		b.WriteString("Your answer length was in a healthy range. ")
	}
	if incomplete {
		b.WriteString("The session hit the time ceiling before the final phase; work on pacing so the recommendation gets its full airtime.")
	} else {
		b.WriteString("You reached the final phase within time.")
	}
	return b.String()
}
