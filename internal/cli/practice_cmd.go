package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/engine"
	"github.com/alexanderramin/caseflow/internal/service"
)

func newPracticeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "practice [QUESTION-ID]",
		Short: "Run a live mock interview",
		Long: "Runs a timed mock interview against the selected question.\n" +
			"Type your answers and press enter. Slash commands: /skip moves to\n" +
			"the next phase, /end stops the interview and scores it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.IsInteractive == nil || app.IsInteractive()

			questionID := ""
			if len(args) == 1 {
				questionID = args[0]
			} else if interactive {
				picked, err := pickQuestion(app)
				if err != nil {
					return err
				}
				questionID = picked
			} else {
				return fmt.Errorf("a question id is required when stdin is not a terminal")
			}

			ctx := context.Background()
			res, err := app.Interviews.Start(ctx, questionID)
			if err != nil {
				return err
			}

			if interactive {
				model := newInterviewModel(app, res.Session.ID, res.Opening)
				final, err := tea.NewProgram(model).Run()
				if err != nil {
					return err
				}
				if m, ok := final.(interviewModel); ok && m.err != nil {
					return m.err
				}
			} else if err := runPracticePipe(ctx, app, cmd, res); err != nil {
				return err
			}

			assessment, err := app.Interviews.Finish(ctx, res.Session.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			session, err := app.Interviews.GetSession(ctx, res.Session.ID)
			if err == nil {
				fmt.Fprint(out, formatter.FormatSessionDetail(session))
			}
			fmt.Fprint(out, formatter.FormatAssessment(assessment))
			return nil
		},
	}
}

// runPracticePipe answers stdin line by line without the TUI, so the
// interview can be scripted or piped. Each line is one utterance; /skip
// advances the phase; EOF stops the session.
func runPracticePipe(ctx context.Context, app *App, cmd *cobra.Command, res *service.StartResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "interviewer: %s\n", res.Opening)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 64*1024), 64*1024)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		input := engine.TurnInput{Kind: engine.InputUtterance, Text: text}
		if text == "/skip" {
			input = engine.TurnInput{Kind: engine.InputSkip}
		}
		d, err := app.Interviews.Advance(ctx, res.Session.ID, input)
		if err != nil {
			return err
		}
		if d.Text != "" {
			fmt.Fprintf(out, "interviewer: %s\n", d.Text)
		}
		if d.Done {
			return nil
		}
	}
	return scanner.Err()
}

// pickQuestion prompts for a question with a two-step track/question form.
func pickQuestion(app *App) (string, error) {
	var track string
	trackOptions := []huh.Option[string]{
		huh.NewOption("Consulting", string(domain.TrackConsulting)),
		huh.NewOption("Product management", string(domain.TrackProductManagement)),
	}
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which track are you practicing?").
			Options(trackOptions...).
			Value(&track),
	)).Run(); err != nil {
		return "", err
	}

	questions := app.Questions.List(domain.Track(track), "")
	if len(questions) == 0 {
		return "", fmt.Errorf("no questions available for track %q", track)
	}
	options := make([]huh.Option[string], 0, len(questions))
	for _, q := range questions {
		label := fmt.Sprintf("%s (%s, %s)", q.Title, q.Type, q.Difficulty)
		options = append(options, huh.NewOption(label, q.ID))
	}

	var questionID string
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a question").
			Options(options...).
			Value(&questionID),
	)).Run()
	return questionID, err
}
