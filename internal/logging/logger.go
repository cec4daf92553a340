// Package logging provides the package-level logger used across tally.
//
// The TUI owns the terminal, so the logger discards everything until Setup
// points it at a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/studiowebux/tally/internal/config"
)

// L is the package-level logger. Callers should use the helper functions
// below.
var L = clog.NewWithOptions(io.Discard, clog.Options{ReportTimestamp: true})

// Setup directs L to path at the given level. It returns a function closing
// the log file. An empty path keeps logging disabled.
func Setup(path, level string) (func() error, error) {
	if path == "" {
		L.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	lvl, err := clog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, config.FilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	L.SetOutput(f)
	L.SetLevel(lvl)
	return f.Close, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
