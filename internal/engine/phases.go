package engine

import "github.com/alexanderramin/caseflow/internal/domain"

// PhaseID names one stage of the interview protocol.
type PhaseID string

// Shared phases.
const (
	PhaseIntro   PhaseID = "INTRO"
	PhaseClarify PhaseID = "CLARIFY"
	PhaseWrapUp  PhaseID = "WRAP_UP"
)

// Consulting-track phases.
const (
	PhaseFramework      PhaseID = "FRAMEWORK"
	PhaseAnalysis       PhaseID = "ANALYSIS"
	PhaseRecommendation PhaseID = "RECOMMENDATION"
)

// Product-sense phases.
const (
	PhaseMission            PhaseID = "MISSION"
	PhaseGoals              PhaseID = "GOALS"
	PhaseSegments           PhaseID = "SEGMENTS"
	PhasePrioritizeSegment  PhaseID = "PRIORITIZE_SEGMENT"
	PhasePersona            PhaseID = "PERSONA"
	PhasePainPoints         PhaseID = "PAIN_POINTS"
	PhasePrioritizePain     PhaseID = "PRIORITIZE_PAIN"
	PhaseSolutions          PhaseID = "SOLUTIONS"
	PhasePrioritizeSolution PhaseID = "PRIORITIZE_SOLUTION"
	PhaseMetrics            PhaseID = "METRICS"
	PhaseSummary            PhaseID = "SUMMARY"
)

// EntityKind classifies entities the analyzer recovers from utterances.
type EntityKind string

const (
	EntityBranch    EntityKind = "branch"
	EntityDriver    EntityKind = "driver"
	EntitySegment   EntityKind = "segment"
	EntityPainPoint EntityKind = "pain_point"
	EntitySolution  EntityKind = "solution"
	EntityMetric    EntityKind = "metric"
	EntityGoal      EntityKind = "goal"
)

// ExitCriterion is a declarative predicate over the session fact ledger,
// evaluated after each candidate turn. Zero-valued fields are not checked.
type ExitCriterion struct {
	MinCandidateTurns int        // candidate turns spent in the phase
	EntityKind        EntityKind // which ledger bucket MinDistinct counts
	MinDistinct       int        // distinct entities of EntityKind required
	RequiresChoice    bool       // a stated choice with at least two reasons
}

// PhaseSpec describes one phase: its advisory duration budget, exit
// criterion, whether a pushback is mandatory before exit, and the
// phase-scoped hints used for nudges.
type PhaseSpec struct {
	ID                PhaseID
	Name              string
	BudgetSeconds     int // advisory, drives pacing only
	RequiresChallenge bool
	ChallengeKind     EntityKind // ledger bucket pushback alternatives come from
	Exit              ExitCriterion
	Hints             []string
}

// Plan is the ordered phase list for one interview. The first phase is
// the initial state and the last is terminal.
type Plan []PhaseSpec

// Terminal reports whether idx is the last phase.
func (p Plan) Terminal(idx int) bool { return idx >= len(p)-1 }

// PlanFor returns the canonical plan for a question. Product-sense
// questions get the long-form product machine; everything else runs the
// six-phase case machine.
func PlanFor(q *domain.Question) Plan {
	if q.Type == domain.TypeProductSense {
		return ProductSensePlan()
	}
	return CasePlan()
}

// CasePlan is the canonical six-phase consulting case machine.
func CasePlan() Plan {
	return Plan{
		{
			ID: PhaseIntro, Name: "Introduction & Fit", BudgetSeconds: 180,
			Exit:  ExitCriterion{MinCandidateTurns: 1},
			Hints: []string{"Ask the candidate for a short introduction."},
		},
		{
			ID: PhaseClarify, Name: "Clarifying Questions", BudgetSeconds: 240,
			Exit: ExitCriterion{MinCandidateTurns: 1},
			Hints: []string{
				"Invite the candidate to ask about the client's business model or objective.",
			},
		},
		{
			ID: PhaseFramework, Name: "Structure", BudgetSeconds: 360,
			Exit: ExitCriterion{MinCandidateTurns: 1, EntityKind: EntityBranch, MinDistinct: 2},
			Hints: []string{
				"Suggest thinking about which parts of the business the problem could sit in.",
				"Ask how they would break the problem into pieces.",
			},
		},
		{
			ID: PhaseAnalysis, Name: "Analysis", BudgetSeconds: 900,
			Exit: ExitCriterion{MinCandidateTurns: 2, EntityKind: EntityDriver, MinDistinct: 1},
			Hints: []string{
				"Point the candidate back at the branch their own structure flagged as most promising.",
				"Offer a piece of data and ask what it implies.",
			},
		},
		{
			ID: PhaseRecommendation, Name: "Recommendation", BudgetSeconds: 300,
			RequiresChallenge: true, ChallengeKind: EntityBranch,
			Exit:              ExitCriterion{MinCandidateTurns: 1, RequiresChoice: true},
			Hints: []string{
				"Ask for the one-sentence answer they would give the CEO right now.",
			},
		},
		{
			ID: PhaseWrapUp, Name: "Feedback", BudgetSeconds: 120,
			Exit: ExitCriterion{},
		},
	}
}

// ProductSensePlan is the canonical fourteen-phase product-design machine.
func ProductSensePlan() Plan {
	return Plan{
		{
			ID: PhaseIntro, Name: "Introduction", BudgetSeconds: 120,
			Exit:  ExitCriterion{MinCandidateTurns: 1},
			Hints: []string{"Ask for a short introduction."},
		},
		{
			ID: PhaseClarify, Name: "Clarifying Questions", BudgetSeconds: 180,
			Exit:  ExitCriterion{MinCandidateTurns: 1},
			Hints: []string{"Invite questions about scope, platform, or constraints."},
		},
		{
			ID: PhaseMission, Name: "Mission", BudgetSeconds: 120,
			Exit:  ExitCriterion{MinCandidateTurns: 1},
			Hints: []string{"Ask how this product connects to the company's mission."},
		},
		{
			ID: PhaseGoals, Name: "Goals", BudgetSeconds: 120,
			Exit:  ExitCriterion{MinCandidateTurns: 1, EntityKind: EntityGoal, MinDistinct: 1},
			Hints: []string{"Ask what success would mean for the business here."},
		},
		{
			ID: PhaseSegments, Name: "User Segments", BudgetSeconds: 240,
			Exit: ExitCriterion{MinCandidateTurns: 1, EntityKind: EntitySegment, MinDistinct: 3},
			Hints: []string{
				"Ask who the distinct groups of users are.",
				"Ask what dimensions distinguish one user group from another.",
			},
		},
		{
			ID: PhasePrioritizeSegment, Name: "Prioritize Segment", BudgetSeconds: 180,
			RequiresChallenge: true, ChallengeKind: EntitySegment,
			Exit:              ExitCriterion{MinCandidateTurns: 1, RequiresChoice: true},
			Hints:             []string{"Ask which segment they would focus on and why."},
		},
		{
			ID: PhasePersona, Name: "Persona", BudgetSeconds: 180,
			Exit:  ExitCriterion{MinCandidateTurns: 1},
			Hints: []string{"Ask them to describe one concrete person in the chosen segment."},
		},
		{
			ID: PhasePainPoints, Name: "Pain Points", BudgetSeconds: 240,
			Exit: ExitCriterion{MinCandidateTurns: 1, EntityKind: EntityPainPoint, MinDistinct: 3},
			Hints: []string{
				"Ask what frustrates this persona most in the current experience.",
			},
		},
		{
			ID: PhasePrioritizePain, Name: "Prioritize Pain Point", BudgetSeconds: 180,
			RequiresChallenge: true, ChallengeKind: EntityPainPoint,
			Exit:              ExitCriterion{MinCandidateTurns: 1, RequiresChoice: true},
			Hints:             []string{"Ask which pain point matters most and by what criteria."},
		},
		{
			ID: PhaseSolutions, Name: "Solutions", BudgetSeconds: 300,
			Exit: ExitCriterion{MinCandidateTurns: 1, EntityKind: EntitySolution, MinDistinct: 3},
			Hints: []string{
				"Ask for several distinct solution directions, including one non-obvious option.",
			},
		},
		{
			ID: PhasePrioritizeSolution, Name: "Prioritize Solution", BudgetSeconds: 180,
			RequiresChallenge: true, ChallengeKind: EntitySolution,
			Exit:              ExitCriterion{MinCandidateTurns: 1, RequiresChoice: true},
			Hints:             []string{"Ask which solution they would build first and why."},
		},
		{
			ID: PhaseMetrics, Name: "Metrics", BudgetSeconds: 240,
			Exit:  ExitCriterion{MinCandidateTurns: 1, EntityKind: EntityMetric, MinDistinct: 2},
			Hints: []string{"Ask how they would measure success, and what could go wrong."},
		},
		{
			ID: PhaseSummary, Name: "Summary", BudgetSeconds: 120,
			Exit:  ExitCriterion{MinCandidateTurns: 1},
			Hints: []string{"Ask for a one-minute recap from mission to metrics."},
		},
		{
			ID: PhaseWrapUp, Name: "Feedback", BudgetSeconds: 120,
			Exit: ExitCriterion{},
		},
	}
}
