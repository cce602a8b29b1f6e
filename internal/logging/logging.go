// Package logging builds the shared zap logger for the CLI commands.
// The interactive dashboard draws its own UI, so commands log to stderr and
// the TUI runs with a nop logger unless a log file is requested.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates the application logger. verbose lifts the level to debug.
// When file is non-empty, output goes there instead of stderr, which keeps
// the TUI's terminal output clean.
func New(verbose bool, file string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything. Used while the dashboard
// owns the terminal.
func Nop() *zap.Logger {
	return zap.NewNop()
}
