package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/caseflow/internal/engine"
	"github.com/alexanderramin/caseflow/internal/teatest"
)

func TestShellDriver_FullExchange(t *testing.T) {
	fake := &fakeInterviews{directives: []engine.Directive{
		{Kind: engine.DirectiveProbe, Text: "What drives the cost side?", Phase: "FRAMEWORK"},
		{Kind: engine.DirectiveWrapUp, Text: "We're at time.", Phase: "WRAP_UP", Done: true},
	}}
	app := newTestApp(t, fake)

	d := teatest.New(t, newInterviewModel(app, "s1", "Welcome to the case."))
	d.DrainInit()
	assert.Contains(t, d.Output(), "Welcome to the case.")

	d.Type("I'd separate fixed and variable costs.")
	d.PressEnter()
	require.Len(t, fake.advanced, 1)
	assert.Equal(t, engine.InputUtterance, fake.advanced[0].Kind)
	assert.Contains(t, d.Output(), "fixed and variable costs")
	assert.Contains(t, d.Output(), "What drives the cost side?")

	d.Type("So my recommendation is to renegotiate leases.")
	d.PressEnter()
	assert.Contains(t, d.Output(), "We're at time.")
	assert.True(t, d.Quitting)
}

func TestShellDriver_SilentTicksPrintNothing(t *testing.T) {
	fake := &fakeInterviews{}
	app := newTestApp(t, fake)

	d := teatest.New(t, newInterviewModel(app, "s1", "Welcome."))
	d.DrainInit()
	before := len(d.Printed)

	d.Send(tickMsg(time.Now()))
	d.Send(tickMsg(time.Now()))

	require.Len(t, fake.advanced, 2)
	assert.Equal(t, engine.InputTick, fake.advanced[0].Kind)
	assert.Len(t, d.Printed, before, "silence directives produce no scrollback")
}

func TestShellDriver_CtrlCStopsCleanly(t *testing.T) {
	app := newTestApp(t, &fakeInterviews{})

	d := teatest.New(t, newInterviewModel(app, "s1", "Welcome."))
	d.DrainInit()
	d.PressCtrlC()

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
