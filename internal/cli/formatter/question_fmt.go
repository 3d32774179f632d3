package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// FormatQuestionList renders the question catalog as a table.
func FormatQuestionList(questions []*domain.Question) string {
	if len(questions) == 0 {
		return "No questions found.\n"
	}

	headers := []string{"ID", "TRACK", "TYPE", "DIFFICULTY", "TITLE"}
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, []string{
			StyleGreen.Render(q.ID),
			TrackBadge(q.Track),
			string(q.Type),
			difficultyPill(q.Difficulty),
			q.Title,
		})
	}

	return RenderBox("Questions", RenderTable(headers, rows))
}

// FormatQuestionDetail renders one question with its full description.
func FormatQuestionDetail(q *domain.Question) string {
	var b strings.Builder
	b.WriteString(Bold(q.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", TrackBadge(q.Track), Dim(string(q.Type)), difficultyPill(q.Difficulty)))
	if q.Company != "" {
		b.WriteString(Dim("Asked at: ") + q.Company + "\n")
	}
	b.WriteString("\n" + q.Description + "\n")
	return RenderBox(q.ID, b.String())
}

func difficultyPill(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render("easy")
	case domain.DifficultyMedium:
		return StyleYellow.Render("medium")
	case domain.DifficultyHard:
		return StyleRed.Render("hard")
	default:
		return StyleDim.Render(string(d))
	}
}
