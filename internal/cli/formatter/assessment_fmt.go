package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// ScoreBar renders a 1..5 score as a filled bar, colored by level.
func ScoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	bar := strings.Repeat("█", score) + strings.Repeat("░", 5-score)
	return ScoreStyle(score).Render(bar)
}

// FormatAssessment renders dimension scores, the weighted overall, and
// the written feedback.
func FormatAssessment(a *domain.Assessment) string {
	if a == nil {
		return Dim("Not assessed yet.") + "\n"
	}

	dims := make([]string, 0, len(a.DimensionScores))
	for name := range a.DimensionScores {
		dims = append(dims, name)
	}
	sort.Strings(dims)

	width := 0
	for _, name := range dims {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	for _, name := range dims {
		score := a.DimensionScores[name]
		b.WriteString(fmt.Sprintf("%-*s  %s  %s\n",
			width, name, ScoreBar(score), ScoreStyle(score).Render(fmt.Sprintf("%d/5", score))))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Bold("Overall:"),
		StyleHeader.Render(fmt.Sprintf("%.1f", a.OverallScore)),
		SourceBadge(a.Source)))

	if a.Feedback != "" {
		b.WriteString("\n" + a.Feedback + "\n")
	}

	return RenderBox("Assessment", b.String())
}
