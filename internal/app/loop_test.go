package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	statepkg "github.com/kk-code-lab/mdbullet/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testLines(n int) []markdown.Line {
	lines := make([]markdown.Line, n)
	for i := range lines {
		lines[i] = markdown.Line{Content: []markdown.Segment{{Text: fmt.Sprintf("line %d", i)}}}
	}
	return lines
}

func newTestApplication(t *testing.T, lines int) (*Application, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	app, err := NewApplication(screen, "doc.md", testLines(lines), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, screen
}

func TestRunScrollsAndQuits(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	app, screen := newTestApplication(t, 40)
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 2, app.State().ScrollOffset)
	assert.True(t, app.State().Quit)
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	app, _ := newTestApplication(t, 5)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := app.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunHandlesResize(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	app, screen := newTestApplication(t, 5)
	screen.PostEvent(tcell.NewEventResize(50, 12))
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 50, app.State().ScreenWidth)
	assert.Equal(t, 12, app.State().ScreenHeight)
}

func TestHandleActionLogsUnknownActions(t *testing.T) {
	app, _ := newTestApplication(t, 1)

	assert.False(t, app.handleAction(struct{}{}))
	assert.False(t, app.handleAction(nil))
	assert.True(t, app.handleAction(statepkg.ScrollDownAction{}))
}
