package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/domain"
)

func newQuestionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Browse the question bank",
	}

	cmd.AddCommand(
		newQuestionListCmd(app),
		newQuestionShowCmd(app),
	)

	return cmd
}

func newQuestionListCmd(app *App) *cobra.Command {
	var track, qType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if track != "" && !domain.ValidTracks[track] {
				return fmt.Errorf("unknown track %q (consulting, product-management)", track)
			}
			qs := app.Questions.List(domain.Track(track), domain.QuestionType(qType))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuestionList(qs))
			return nil
		},
	}

	cmd.Flags().StringVar(&track, "track", "", "Filter by track (consulting, product-management)")
	cmd.Flags().StringVar(&qType, "type", "", "Filter by question type")

	return cmd
}

func newQuestionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one question in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, ok := app.Questions.Get(args[0])
			if !ok {
				return fmt.Errorf("no question with id %q", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuestionDetail(q))
			return nil
		},
	}
}
