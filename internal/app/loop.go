package app

import (
	"context"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mdbullet/internal/state"
	"go.uber.org/zap"
)

// Run draws the document and processes events until the user quits, the
// screen is finalised or ctx is done. The event goroutine has exited by
// the time Run returns.
func (app *Application) Run(ctx context.Context) error {
	app.renderer.Render(app.state)

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go app.screen.ChannelEvents(events, quit)
	defer func() {
		close(quit)
		for range events {
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.state.Quit {
		renderPending := false

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			renderPending = app.handleEvent(ev)
		case <-sigContCh:
			renderPending = app.resumeAfterStop()
		}

		if app.processActions() {
			renderPending = true
		}
		if renderPending && !app.state.Quit {
			app.renderer.Render(app.state)
		}
	}
	return nil
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		app.input.ProcessEvent(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// processActions drains queued actions through the reducer.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	if _, ok := action.(statepkg.SuspendAction); ok {
		app.suspendToShell()
		return app.resumeAfterStop()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.logger.Warn("reduce action", zap.Error(err))
		return false
	}
	return true
}
