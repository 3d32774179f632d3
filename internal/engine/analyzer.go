package engine

// Entity is one named item recovered from a candidate utterance.
type Entity struct {
	Kind EntityKind
	Name string
}

// Signals is the structured reading of one candidate utterance. The
// engine consumes signals, never raw prose: the text-understanding step
// lives behind the Analyzer interface.
type Signals struct {
	PauseRequested bool // candidate asked for time to think
	Unintelligible bool // utterance unintelligible or cut off
	OffTopic       bool // utterance off-topic for the current phase
	SkipRequested  bool // explicit request to move on

	Entities     []Entity // items enumerated, keyed to the phase's expected kind
	StatesChoice bool     // candidate committed to one option
	Choice       string   // the chosen option, when recoverable
	ReasonCount  int      // distinct reasons given for the choice
	ClaimedCount int      // "there are three..." style self-reported count, 0 if none
}

// Analyzer turns a candidate utterance into Signals, in the context of
// the current phase. Implementations must not fail: when understanding
// is impossible they return a zero Signals value.
type Analyzer interface {
	Analyze(utterance string, phase PhaseSpec) Signals
}
