package rubric

import "github.com/alexanderramin/caseflow/internal/domain"

// Dimension is one weighted scoring axis of a rubric. Criteria maps a
// score level (1..5) to the behavioral indicators that justify it.
type Dimension struct {
	Name     string           `yaml:"name"`
	Weight   int              `yaml:"weight"` // 0..100; weights across a rubric sum to 100
	Criteria map[int][]string `yaml:"criteria"`
}

// CalibratedExample anchors the rubric with a real scored transcript.
type CalibratedExample struct {
	TranscriptSummary string   `yaml:"transcript_summary"`
	OverallScore      float64  `yaml:"overall_score"` // 0..5
	Strengths         []string `yaml:"strengths"`
}

// Config is the full scoring rubric for one question type.
type Config struct {
	QuestionType domain.QuestionType `yaml:"question_type"`
	Dimensions   []Dimension         `yaml:"dimensions"`
	Examples     []CalibratedExample `yaml:"examples,omitempty"`
}

// ExcellenceIndicators collects the level-5 indicators across all
// dimensions. Used by the prompt composer to synthesize excellence
// guidance for the interviewer persona.
func (c *Config) ExcellenceIndicators() []string {
	var out []string
	for _, d := range c.Dimensions {
		out = append(out, d.Criteria[5]...)
	}
	return out
}

// DimensionNames returns dimension names in rubric order.
func (c *Config) DimensionNames() []string {
	names := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		names[i] = d.Name
	}
	return names
}

// WeightFor returns the weight of the named dimension, or 0 if absent.
func (c *Config) WeightFor(name string) int {
	for _, d := range c.Dimensions {
		if d.Name == name {
			return d.Weight
		}
	}
	return 0
}
