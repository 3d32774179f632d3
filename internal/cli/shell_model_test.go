package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/caseflow/internal/engine"
)

func typeAndEnter(m interviewModel, text string) (interviewModel, tea.Cmd) {
	m.input.SetValue(text)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(interviewModel), cmd
}

func TestShell_UtteranceGoesToService(t *testing.T) {
	fake := &fakeInterviews{directives: []engine.Directive{
		{Kind: engine.DirectiveProbe, Text: "What would you look at first?", Phase: "FRAMEWORK"},
	}}
	app := newTestApp(t, fake)
	m := newInterviewModel(app, "s1", "Welcome.")

	next, cmd := typeAndEnter(m, "I'd build a profit tree.")
	require.Len(t, fake.advanced, 1)
	assert.Equal(t, engine.InputUtterance, fake.advanced[0].Kind)
	assert.Equal(t, "I'd build a profit tree.", fake.advanced[0].Text)
	assert.NotNil(t, cmd)
	assert.False(t, next.done)
	assert.Empty(t, next.input.Value(), "input clears after submit")
}

func TestShell_EmptyInputIsIgnored(t *testing.T) {
	fake := &fakeInterviews{}
	app := newTestApp(t, fake)
	m := newInterviewModel(app, "s1", "Welcome.")

	_, cmd := typeAndEnter(m, "   ")
	assert.Nil(t, cmd)
	assert.Empty(t, fake.advanced)
}

func TestShell_SkipCommand(t *testing.T) {
	fake := &fakeInterviews{directives: []engine.Directive{
		{Kind: engine.DirectiveTransition, Text: "Let's move on.", Phase: "ANALYSIS"},
	}}
	app := newTestApp(t, fake)
	m := newInterviewModel(app, "s1", "Welcome.")

	_, _ = typeAndEnter(m, "/skip")
	require.Len(t, fake.advanced, 1)
	assert.Equal(t, engine.InputSkip, fake.advanced[0].Kind)
}

func TestShell_EndCommandQuitsWithoutAdvancing(t *testing.T) {
	fake := &fakeInterviews{}
	app := newTestApp(t, fake)
	m := newInterviewModel(app, "s1", "Welcome.")

	next, cmd := typeAndEnter(m, "/end")
	assert.True(t, next.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, fake.advanced)
}

func TestShell_TickFeedsEngineClock(t *testing.T) {
	fake := &fakeInterviews{}
	app := newTestApp(t, fake)
	m := newInterviewModel(app, "s1", "Welcome.")

	next, cmd := m.Update(tickMsg(time.Now()))
	require.Len(t, fake.advanced, 1)
	assert.Equal(t, engine.InputTick, fake.advanced[0].Kind)
	assert.NotNil(t, cmd, "tick reschedules itself")
	assert.False(t, next.(interviewModel).done)
}

func TestShell_WrapUpDirectiveEndsTheShell(t *testing.T) {
	fake := &fakeInterviews{directives: []engine.Directive{
		{Kind: engine.DirectiveWrapUp, Text: "We're at time.", Phase: "WRAP_UP", Done: true},
	}}
	app := newTestApp(t, fake)
	m := newInterviewModel(app, "s1", "Welcome.")

	next, cmd := typeAndEnter(m, "So my recommendation stands.")
	assert.True(t, next.done)
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View(), "finished shell renders nothing")
}

func TestShell_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, &fakeInterviews{})
	m := newInterviewModel(app, "s1", "Welcome.")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(interviewModel).quitting)
	assert.NotNil(t, cmd)
}
