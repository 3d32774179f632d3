package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// FormatSessionList renders past sessions as a table, newest first.
func FormatSessionList(sessions []*domain.PracticeSession) string {
	if len(sessions) == 0 {
		return "No sessions yet. Start one with 'caseflow practice'.\n"
	}

	headers := []string{"ID", "QUESTION", "TRACK", "STATUS", "STARTED", "LENGTH"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		length := Dim("—")
		if s.EndedAt != nil {
			length = FormatSeconds(s.DurationSeconds)
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			s.QuestionID,
			TrackBadge(s.Track),
			SessionStatusPill(s.Status),
			HumanTimestamp(s.StartedAt),
			length,
		})
	}

	return RenderBox("Sessions", RenderTable(headers, rows))
}

// FormatSessionDetail renders one session header block.
func FormatSessionDetail(s *domain.PracticeSession) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", SessionStatusPill(s.Status), Dim(s.ID)))
	b.WriteString(fmt.Sprintf("Question:  %s (%s, %s)\n", s.QuestionID, s.Track, s.Type))
	b.WriteString(fmt.Sprintf("Format:    %s\n", s.Format))
	b.WriteString(fmt.Sprintf("Started:   %s\n", HumanTimestamp(s.StartedAt)))
	if s.EndedAt != nil {
		b.WriteString(fmt.Sprintf("Length:    %s\n", FormatSeconds(s.DurationSeconds)))
	}
	if s.Incomplete {
		b.WriteString(StyleYellow.Render("Ended before all phases were covered.") + "\n")
	}
	return b.String()
}

// FormatTranscript renders a transcript as an interviewer/candidate dialogue.
func FormatTranscript(tr *domain.Transcript) string {
	if tr == nil || len(tr.Entries) == 0 {
		return Dim("No transcript recorded.") + "\n"
	}

	var b strings.Builder
	for _, e := range tr.Entries {
		speaker := StyleBlue.Render("Interviewer")
		if e.Role == domain.RoleCandidate {
			speaker = StyleGreen.Render("You")
		}
		b.WriteString(speaker + Dim(":") + " " + e.Text + "\n")
	}
	return b.String()
}
