package rubric

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
	"gopkg.in/yaml.v3"
)

// Store holds scoring rubrics keyed by question type. Loaded once at
// startup and read-only thereafter; safe for concurrent readers.
type Store struct {
	configs map[domain.QuestionType]*Config
}

// NewStore builds a store from the built-in rubric tables.
// Returns a ConfigurationError if any built-in table is invalid.
func NewStore() (*Store, error) {
	s := &Store{configs: make(map[domain.QuestionType]*Config)}
	for _, cfg := range builtinRubrics() {
		if err := validate(cfg); err != nil {
			return nil, fmt.Errorf("%w: built-in rubric %s: %v", domain.ErrConfiguration, cfg.QuestionType, err)
		}
		s.configs[cfg.QuestionType] = cfg
	}
	return s, nil
}

// LoadDir overlays rubrics from *.yaml files in dir on top of the
// built-ins. A file for an already-known type replaces it wholesale.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading rubric directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading rubric file %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("%w: parsing rubric %s: %v", domain.ErrConfiguration, path, err)
		}
		if err := validate(&cfg); err != nil {
			return fmt.Errorf("%w: rubric %s: %v", domain.ErrConfiguration, path, err)
		}
		s.configs[cfg.QuestionType] = &cfg
	}
	return nil
}

// Get returns the rubric for a question type. Absence is a valid
// outcome: callers degrade gracefully (no excellence guidance, no
// dimension-scored assessment).
func (s *Store) Get(qt domain.QuestionType) (*Config, bool) {
	cfg, ok := s.configs[qt]
	return cfg, ok
}

// Types returns all question types that have a rubric.
func (s *Store) Types() []domain.QuestionType {
	out := make([]domain.QuestionType, 0, len(s.configs))
	for qt := range s.configs {
		out = append(out, qt)
	}
	return out
}

// validate enforces the rubric invariants: at least one dimension,
// weights summing to 100, levels within 1..5, and a non-empty level-5
// indicator set for every dimension (excellence guidance source).
func validate(cfg *Config) error {
	if cfg.QuestionType == "" {
		return fmt.Errorf("question_type is required")
	}
	if len(cfg.Dimensions) == 0 {
		return fmt.Errorf("at least one dimension is required")
	}
	weightSum := 0
	for _, d := range cfg.Dimensions {
		if d.Name == "" {
			return fmt.Errorf("dimension name is required")
		}
		if d.Weight < 0 || d.Weight > 100 {
			return fmt.Errorf("dimension %q: weight %d out of range [0,100]", d.Name, d.Weight)
		}
		weightSum += d.Weight
		for level := range d.Criteria {
			if level < 1 || level > 5 {
				return fmt.Errorf("dimension %q: criteria level %d out of range [1,5]", d.Name, level)
			}
		}
		if len(d.Criteria[5]) == 0 {
			return fmt.Errorf("dimension %q: level-5 indicators are required", d.Name)
		}
	}
	if weightSum != 100 {
		return fmt.Errorf("dimension weights sum to %d, want 100", weightSum)
	}
	for _, ex := range cfg.Examples {
		if ex.OverallScore < 0 || ex.OverallScore > 5 {
			return fmt.Errorf("calibrated example: overall score %.1f out of range [0,5]", ex.OverallScore)
		}
	}
	return nil
}
