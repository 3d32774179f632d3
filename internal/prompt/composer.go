package prompt

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/rubric"
)

// Composer assembles the per-session system prompt from the static
// template tables, the rubric store, and question metadata. Pure with
// respect to its inputs; the only side effect is a warning log when an
// unknown question type falls back to the generic section.
type Composer struct {
	rubrics *rubric.Store
	logger  *slog.Logger
}

// NewComposer builds a Composer. Returns a ConfigurationError if the
// static template tables are missing a mandatory section; this is the
// load-time invariant, not a per-call one.
func NewComposer(rubrics *rubric.Store, logger *slog.Logger) (*Composer, error) {
	if err := verifyTemplates(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{rubrics: rubrics, logger: logger}, nil
}

// Compose produces the system prompt for one session: role, tone,
// format section, type section, excellence criteria (when a rubric
// exists), and the case data verbatim.
func (c *Composer) Compose(q *domain.Question, format domain.InterviewFormat) string {
	var b strings.Builder

	b.WriteString(rolePrompt)
	b.WriteString("\n\n")
	b.WriteString(tonePrompt)
	b.WriteString("\n\n")
	b.WriteString(formatSections[format])
	b.WriteString("\n\n")

	typeSection, ok := typeSections[q.Type]
	if !ok {
		c.logger.Warn("unknown question type, using generic template",
			"question_id", q.ID, "type", string(q.Type))
		typeSection = genericTypeSection
	}
	b.WriteString(typeSection)
	b.WriteString("\n\n")

	if cfg, ok := c.rubrics.Get(q.Type); ok {
		b.WriteString(excellenceSection(cfg))
		b.WriteString("\n\n")
	}

	b.WriteString(caseDataSection(q))
	b.WriteString("\n\n")
	b.WriteString(wrapUpSection)

	return b.String()
}

// excellenceSection renders the rubric's level-5 indicators as guidance
// on what an excellent answer looks like.
func excellenceSection(cfg *rubric.Config) string {
	var b strings.Builder
	b.WriteString("EXCELLENCE CRITERIA:\nAn excellent candidate will:\n")
	for _, ind := range cfg.ExcellenceIndicators() {
		b.WriteString("- ")
		b.WriteString(ind)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// caseDataSection embeds the question title and description verbatim,
// sanitized only for control characters unsafe in the prompt transport.
func caseDataSection(q *domain.Question) string {
	return fmt.Sprintf("CASE DATA:\nTitle: %s\n\n%s", sanitize(q.Title), sanitize(q.Description))
}

// sanitize strips ASCII control characters other than newline and tab.
// Interview content is embedded verbatim otherwise.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// verifyTemplates checks the static tables for mandatory sections.
func verifyTemplates() error {
	if strings.TrimSpace(rolePrompt) == "" || strings.TrimSpace(tonePrompt) == "" {
		return fmt.Errorf("%w: base prompt sections missing", domain.ErrConfiguration)
	}
	for _, f := range []domain.InterviewFormat{domain.FormatInterviewerLed, domain.FormatCandidateLed} {
		if strings.TrimSpace(formatSections[f]) == "" {
			return fmt.Errorf("%w: format section %s missing", domain.ErrConfiguration, f)
		}
	}
	if strings.TrimSpace(genericTypeSection) == "" {
		return fmt.Errorf("%w: generic type section missing", domain.ErrConfiguration)
	}
	for track, types := range domain.TypesForTrack {
		for _, qt := range types {
			if strings.TrimSpace(typeSections[qt]) == "" {
				return fmt.Errorf("%w: type section %s/%s missing", domain.ErrConfiguration, track, qt)
			}
		}
	}
	return nil
}
