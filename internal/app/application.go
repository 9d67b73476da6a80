package app

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	statepkg "github.com/kk-code-lab/mdbullet/internal/state"
	inputui "github.com/kk-code-lab/mdbullet/internal/ui/input"
	renderui "github.com/kk-code-lab/mdbullet/internal/ui/render"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

// actionBuffer bounds the number of actions queued between reductions.
const actionBuffer = 16

// Options configure an Application.
type Options struct {
	Theme  *renderui.ColorTheme
	Logger *zap.Logger
}

// Application represents the running viewer.
type Application struct {
	screen    tcell.Screen
	state     *statepkg.ViewState
	reducer   *statepkg.StateReducer
	renderer  *renderui.Renderer
	input     *inputui.InputHandler
	actionCh  chan statepkg.Action
	logger    *zap.Logger
	closeOnce sync.Once
}

// NewApplication initialises screen and prepares a viewer for lines.
func NewApplication(screen tcell.Screen, title string, lines []markdown.Line, opts Options) (*Application, error) {
	if err := screen.Init(); err != nil {
		return nil, zerr.Wrap(err, "init screen")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	state := statepkg.NewViewState(title, lines)
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	actionCh := make(chan statepkg.Action, actionBuffer)
	renderer := renderui.NewRenderer(screen)
	if opts.Theme != nil {
		renderer.SetTheme(*opts.Theme)
	}
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderer,
		input:    inputHandler,
		actionCh: actionCh,
		logger:   logger,
	}, nil
}

// State returns the current viewer state.
func (app *Application) State() *statepkg.ViewState {
	return app.state
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	app.closeOnce.Do(app.screen.Fini)
	return nil
}
