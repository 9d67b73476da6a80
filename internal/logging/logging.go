// Package logging builds the zap logger shared by the CLI commands.
package logging

import (
	"go.trai.ch/zerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger writing to stderr. Verbose lowers the
// level to debug; otherwise only warnings and errors are written so
// rendered output stays clean.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = !verbose

	logger, err := config.Build()
	if err != nil {
		return nil, zerr.Wrap(err, "build logger")
	}
	return logger, nil
}
