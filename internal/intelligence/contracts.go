package intelligence

import (
	"fmt"

	"github.com/alexanderramin/caseflow/internal/engine"
)

// utteranceReading is the JSON contract for the analyze task.
type utteranceReading struct {
	PauseRequested bool          `json:"pause_requested"`
	Unintelligible bool          `json:"unintelligible"`
	OffTopic       bool          `json:"off_topic"`
	SkipRequested  bool          `json:"skip_requested"`
	Entities       []readingItem `json:"entities"`
	StatesChoice   bool          `json:"states_choice"`
	Choice         string        `json:"choice"`
	ReasonCount    int           `json:"reason_count"`
	ClaimedCount   int           `json:"claimed_count"`
	Confidence     float64       `json:"confidence"`
}

type readingItem struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func validateReading(r utteranceReading) error {
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %.2f out of range [0,1]", r.Confidence)
	}
	if r.ReasonCount < 0 {
		return fmt.Errorf("negative reason_count %d", r.ReasonCount)
	}
	if r.ClaimedCount < 0 {
		return fmt.Errorf("negative claimed_count %d", r.ClaimedCount)
	}
	return nil
}

// toSignals converts a reading into engine signals, keeping only
// entities of the phase's expected kind.
func (r utteranceReading) toSignals(expected engine.EntityKind) engine.Signals {
	sig := engine.Signals{
		PauseRequested: r.PauseRequested,
		Unintelligible: r.Unintelligible,
		OffTopic:       r.OffTopic,
		SkipRequested:  r.SkipRequested,
		StatesChoice:   r.StatesChoice,
		Choice:         r.Choice,
		ReasonCount:    r.ReasonCount,
		ClaimedCount:   r.ClaimedCount,
	}
	for _, e := range r.Entities {
		if expected == "" || engine.EntityKind(e.Kind) != expected {
			continue
		}
		sig.Entities = append(sig.Entities, engine.Entity{
			Kind: engine.EntityKind(e.Kind),
			Name: e.Name,
		})
	}
	return sig
}

// scoredTranscript is the JSON contract for the assess task.
type scoredTranscript struct {
	Scores   map[string]int `json:"scores"`
	Feedback string         `json:"feedback"`
}
