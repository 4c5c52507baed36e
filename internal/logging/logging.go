package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewErrorWriter returns a Writer that records each write to logger as a
// single entry at error level, with any trailing newline removed.
func NewErrorWriter(logger *zap.Logger) (io.Writer, error) {
	std, err := zap.NewStdLogAt(logger, zapcore.ErrorLevel)
	if err != nil {
		return nil, fmt.Errorf("create error writer: %w", err)
	}

	return std.Writer(), nil
}

// NewLogger creates a Logger, outputting JSON to the given logfile. If debug
// is true then the log level is set to DEBUG and the caller is recorded, else
// it's INFO.
func NewLogger(logfile string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logfile), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logfile}
	cfg.ErrorOutputPaths = []string{logfile}
	cfg.DisableCaller = !debug
	cfg.Sampling = nil

	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logfile, err)
	}

	return logger, nil
}
