package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalog is the read-only question bank. Built-ins are always present;
// additional questions can be overlaid from a YAML directory at startup.
type Catalog struct {
	byID  map[string]*domain.Question
	order []string
}

// questionFile is the on-disk YAML shape for user-supplied questions.
type questionFile struct {
	Questions []questionYAML `yaml:"questions"`
}

type questionYAML struct {
	ID          string `yaml:"id"`
	Track       string `yaml:"track"`
	Type        string `yaml:"type"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Difficulty  string `yaml:"difficulty"`
	Company     string `yaml:"company"`
}

// New builds a catalog from the built-in question set.
func New() (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*domain.Question)}
	for _, q := range builtinQuestions() {
		if err := c.add(q); err != nil {
			return nil, fmt.Errorf("%w: built-in question: %v", domain.ErrConfiguration, err)
		}
	}
	return c, nil
}

// LoadDir overlays questions from *.yaml files in dir. Duplicate IDs
// replace the built-in entry.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading question directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading question file %s: %w", path, err)
		}
		var file questionFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%w: parsing questions %s: %v", domain.ErrConfiguration, path, err)
		}
		for _, qy := range file.Questions {
			q := &domain.Question{
				ID:          qy.ID,
				Track:       domain.Track(qy.Track),
				Type:        domain.QuestionType(qy.Type),
				Title:       qy.Title,
				Description: qy.Description,
				Difficulty:  domain.Difficulty(qy.Difficulty),
				Company:     qy.Company,
			}
			if err := c.add(q); err != nil {
				return fmt.Errorf("%w: question file %s: %v", domain.ErrConfiguration, path, err)
			}
		}
	}
	return nil
}

func (c *Catalog) add(q *domain.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if _, exists := c.byID[q.ID]; !exists {
		c.order = append(c.order, q.ID)
	}
	c.byID[q.ID] = q
	return nil
}

// Get returns a question by id.
func (c *Catalog) Get(id string) (*domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// List returns questions filtered by track and type. Empty filter values
// match everything. Results keep catalog order.
func (c *Catalog) List(track domain.Track, qt domain.QuestionType) []*domain.Question {
	var out []*domain.Question
	for _, id := range c.order {
		q := c.byID[id]
		if track != "" && q.Track != track {
			continue
		}
		if qt != "" && q.Type != qt {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Tracks returns the distinct tracks present in the catalog, sorted.
func (c *Catalog) Tracks() []domain.Track {
	seen := map[domain.Track]bool{}
	for _, q := range c.byID {
		seen[q.Track] = true
	}
	out := make([]domain.Track, 0, len(seen))
	for tr := range seen {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
