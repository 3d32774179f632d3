package prompt

import (
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
)

// interviewerLedFirms is the allow-list of companies whose interviews are
// interviewer-led. Everything else defaults to candidate-led.
var interviewerLedFirms = map[string]bool{
	"mckinsey":    true,
	"deloitte":    true,
	"accenture":   true,
	"capital one": true,
}

// SelectFormat maps a company identity to an interview format. Pure
// lookup: unknown or empty company is a valid input and resolves to
// candidate-led.
func SelectFormat(company string) domain.InterviewFormat {
	key := strings.ToLower(strings.TrimSpace(company))
	if interviewerLedFirms[key] {
		return domain.FormatInterviewerLed
	}
	return domain.FormatCandidateLed
}
