package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/repository"
)

func newAssessCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assess SESSION-ID",
		Short: "Show the assessment for a finished session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assessment, err := app.Interviews.GetAssessment(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no assessment for session %q", args[0])
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAssessment(assessment))
			return nil
		},
	}
}
