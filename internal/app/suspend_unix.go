//go:build unix

package app

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// contSignals are delivered when the shell resumes a stopped viewer.
func contSignals() []os.Signal {
	return []os.Signal{unix.SIGCONT}
}

func (app *Application) suspendToShell() {
	// Hand the terminal back before stopping.
	_ = app.screen.Suspend()
	// Stop only this process so job control in the parent shell keeps working.
	if err := unix.Kill(unix.Getpid(), unix.SIGTSTP); err != nil {
		app.logger.Warn("suspend", zap.Error(err))
	}
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.logger.Debug("resume screen", zap.Error(err))
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	return true
}
