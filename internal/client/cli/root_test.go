package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, a *App, script string) {
	t.Helper()
	a.in = strings.NewReader(script)
	a.reader = bufio.NewReader(a.in)
	a.Root(context.Background())
}

func TestRoot_ExitAndUnknown(t *testing.T) {
	gw := &fakeGateway{}
	a, out := newTestApp(gw, nil)

	runScript(t, a, "frobnicate\nexit\n")

	s := out.String()
	assert.Contains(t, s, "Unknown command: frobnicate")
	assert.Contains(t, s, "Bye!")
}

func TestRoot_HelpDependsOnLogin(t *testing.T) {
	gw := &fakeGateway{}

	a, out := newTestApp(gw, nil)
	runScript(t, a, "help\n")
	assert.Contains(t, out.String(), "signup, login, exit")
	assert.NotContains(t, out.String(), "unfriend")

	a, out = newTestApp(gw, testUser())
	runScript(t, a, "help\n")
	assert.Contains(t, out.String(), "unfriend <id>")
}

func TestRoot_PromptShowsUserName(t *testing.T) {
	gw := &fakeGateway{}
	a, out := newTestApp(gw, testUser())

	runScript(t, a, "exit\n")
	assert.Contains(t, out.String(), "remindme (Me) > ")
}

func TestRoot_ReportsCommandErrors(t *testing.T) {
	gw := &fakeGateway{}
	a, out := newTestApp(gw, testUser())

	runScript(t, a, "accept\nexit\n")
	assert.Contains(t, out.String(), "Error: Usage: accept <request-id>")
}

func TestRoot_EOFEndsLoop(t *testing.T) {
	gw := &fakeGateway{}
	a, out := newTestApp(gw, nil)

	runScript(t, a, "")
	require.Contains(t, out.String(), "Welcome to remindme")
}
