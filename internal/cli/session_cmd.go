package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/repository"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Review past practice sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionShowCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Interviews.ListSessions(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show")

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	var withTranscript bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a session with its assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			s, err := app.Interviews.GetSession(ctx, args[0])
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no session with id %q", args[0])
				}
				return err
			}
			fmt.Fprint(out, formatter.FormatSessionDetail(s))

			assessment, err := app.Interviews.GetAssessment(ctx, s.ID)
			switch {
			case err == nil:
				fmt.Fprint(out, formatter.FormatAssessment(assessment))
			case errors.Is(err, repository.ErrNotFound):
				fmt.Fprintln(out, formatter.Dim("Not assessed yet."))
			default:
				return err
			}

			if withTranscript {
				tr, err := app.Interviews.GetTranscript(ctx, s.ID)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.Header("Transcript"))
				fmt.Fprint(out, formatter.FormatTranscript(tr))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTranscript, "transcript", false, "Include the full transcript")

	return cmd
}
