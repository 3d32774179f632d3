package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreStyle returns the style for a 1..5 rubric score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 4:
		return StyleGreen
	case score == 3:
		return StyleYellow
	default:
		return StyleRed
	}
}

// SessionStatusPill returns a colored indicator for a session status.
func SessionStatusPill(status domain.SessionStatus) string {
	switch status {
	case domain.SessionRunning:
		return StyleGreen.Render("● Running")
	case domain.SessionCompleted:
		return StyleBlue.Render("✔ Completed")
	case domain.SessionAbandoned:
		return StyleDim.Render("✖ Abandoned")
	default:
		return StyleDim.Render(string(status))
	}
}

// TrackBadge returns a purple-styled track label.
func TrackBadge(track domain.Track) string {
	switch track {
	case domain.TrackConsulting:
		return StylePurple.Render("Consulting")
	case domain.TrackProductManagement:
		return StylePurple.Render("Product")
	default:
		return StyleDim.Render(string(track))
	}
}

// SourceBadge labels how an assessment was produced.
func SourceBadge(source domain.AssessmentSource) string {
	if source == domain.AssessmentSourceLLM {
		return StyleBlue.Render("model-scored")
	}
	return StyleDim.Render("heuristic")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
