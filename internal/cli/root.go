package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/caseflow/internal/catalog"
	"github.com/alexanderramin/caseflow/internal/service"
)

// App holds the dependencies CLI commands run against.
type App struct {
	Interviews service.InterviewService
	Questions  *catalog.Catalog

	// IsInteractive reports whether stdin is a terminal. The practice
	// command refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "caseflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "caseflow",
		Short: "Mock interview practice for consulting and PM cases",
	}

	root.AddCommand(
		newQuestionCmd(app),
		newSessionCmd(app),
		newPracticeCmd(app),
		newAssessCmd(app),
	)

	return root
}
