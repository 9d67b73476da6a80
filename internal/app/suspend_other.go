//go:build !unix

package app

import "os"

func contSignals() []os.Signal { return nil }

// Without job control suspend does nothing.
func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool { return false }
