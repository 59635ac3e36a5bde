// Package logging configures the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// Setup sets the level from a name such as "debug" or "warn". Debug also turns on
// timestamps and caller reporting.
func Setup(level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	Logger.SetLevel(lvl)
	Logger.SetReportTimestamp(lvl <= log.DebugLevel)
	Logger.SetReportCaller(lvl <= log.DebugLevel)
	return nil
}

// ToFile redirects the logger to path, appending. It returns a closer for the file.
// An empty path discards all output, which keeps a full-screen UI clean.
func ToFile(path string) (io.Closer, error) {
	if path == "" {
		Logger.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger.SetOutput(f)
	return f, nil
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	Logger.Warn(msg, keyvals...)
}
