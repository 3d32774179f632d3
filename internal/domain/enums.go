package domain

type Track string

const (
	TrackConsulting        Track = "consulting"
	TrackProductManagement Track = "product-management"
)

// ValidTracks is the canonical set of accepted track strings.
var ValidTracks = map[string]bool{
	"consulting": true, "product-management": true,
}

type QuestionType string

// Consulting question types.
const (
	TypeProfitability QuestionType = "profitability"
	TypeMarketEntry   QuestionType = "market-entry"
	TypeMarketSizing  QuestionType = "market-sizing"
	TypeMergerAcq     QuestionType = "merger-acquisition"
)

// Product-management question types.
const (
	TypeProductSense QuestionType = "product-sense"
	TypeExecution    QuestionType = "execution"
	TypeStrategy     QuestionType = "strategy"
	TypeBehavioral   QuestionType = "behavioral"
)

// TypesForTrack maps each track to its accepted question types.
var TypesForTrack = map[Track][]QuestionType{
	TrackConsulting:        {TypeProfitability, TypeMarketEntry, TypeMarketSizing, TypeMergerAcq},
	TrackProductManagement: {TypeProductSense, TypeExecution, TypeStrategy, TypeBehavioral},
}

// IsValidType returns true if qt is a known type for the given track.
func IsValidType(track Track, qt QuestionType) bool {
	for _, t := range TypesForTrack[track] {
		if t == qt {
			return true
		}
	}
	return false
}

type InterviewFormat string

const (
	FormatInterviewerLed InterviewFormat = "interviewer-led"
	FormatCandidateLed   InterviewFormat = "candidate-led"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type SessionStatus string

const (
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)
