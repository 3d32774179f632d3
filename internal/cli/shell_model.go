package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/engine"
)

// tickMsg fires once a second so the engine can observe silence.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// interviewModel is the bubbletea Model for a live interview. It relays
// utterances and timer ticks to the interview service and prints the
// interviewer's side of the conversation as scrollback.
type interviewModel struct {
	app       *App
	sessionID string
	opening   string

	input     textinput.Model
	width     int
	startedAt time.Time
	elapsed   time.Duration

	done     bool
	quitting bool
	err      error
}

func newInterviewModel(app *App, sessionID, opening string) interviewModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 2000

	return interviewModel{
		app:       app,
		sessionID: sessionID,
		opening:   opening,
		input:     ti,
		startedAt: time.Now(),
	}
}

func (m interviewModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(interviewerLine(m.opening)),
		tick(),
	)
}

func (m interviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10
		return m, nil

	case tickMsg:
		if m.done || m.quitting {
			return m, nil
		}
		m.elapsed = time.Time(msg).Sub(m.startedAt)
		next, cmd := m.advance(engine.TurnInput{Kind: engine.InputTick}, "")
		if next.done || next.quitting {
			return next, cmd
		}
		// Only the tick handler reschedules, so there is exactly one
		// tick loop regardless of how many utterances go through.
		return next, tea.Batch(cmd, tick())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m interviewModel) View() string {
	if m.quitting || m.done {
		return ""
	}
	clock := formatter.Dim("[" + formatter.FormatSeconds(int(m.elapsed.Seconds())) + "]")
	return clock + " " + formatter.StyleGreen.Render("you") + formatter.Dim(" ❯ ") + m.input.View()
}

func (m interviewModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	switch text {
	case "/end", "/quit":
		m.quitting = true
		return m, tea.Quit
	case "/skip":
		next, cmd := m.advance(engine.TurnInput{Kind: engine.InputSkip}, "")
		return next, cmd
	default:
		next, cmd := m.advance(engine.TurnInput{Kind: engine.InputUtterance, Text: text}, text)
		return next, cmd
	}
}

// advance feeds one input to the service and prints whatever the
// interviewer says back. Silence directives produce no output.
func (m interviewModel) advance(input engine.TurnInput, echo string) (interviewModel, tea.Cmd) {
	d, err := m.app.Interviews.Advance(context.Background(), m.sessionID, input)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	if echo != "" {
		cmds = append(cmds, tea.Println(candidateLine(echo)))
	}
	if d.Text != "" {
		cmds = append(cmds, tea.Println(interviewerLine(d.Text)))
	}
	if d.Done {
		m.done = true
		cmds = append(cmds, tea.Quit)
		return m, tea.Sequence(cmds...)
	}
	return m, tea.Batch(cmds...)
}

func interviewerLine(text string) string {
	return formatter.StyleBlue.Render("interviewer") + formatter.Dim(":") + " " + text
}

func candidateLine(text string) string {
	return formatter.StyleGreen.Render("you") + formatter.Dim(":") + " " + text
}
