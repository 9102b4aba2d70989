// Package logging builds the application logger.
//
// The TUI owns the terminal, so log output goes to a file under the XDG
// state directory instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// logRelPath is the log file location relative to the XDG state home.
const logRelPath = "rubberband/rubberband.log"

// Path returns where the log file lives.
func Path() (string, error) {
	return xdg.StateFile(logRelPath)
}

// ParseLevel maps a [log] level value to a log.Level. "off" reports false.
func ParseLevel(level string) (log.Level, bool, error) {
	if level == "" || level == "off" {
		return 0, false, nil
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return 0, false, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, true, nil
}

// New returns a logger for level writing to the XDG log file, and the closer
// for that file. With level "off" the logger discards everything. The
// returned logger is also installed as the charm log default so packages
// logging through the top-level functions end up in the same file.
func New(level string) (*log.Logger, io.Closer, error) {
	lvl, on, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if !on {
		logger := log.New(io.Discard)
		log.SetDefault(logger)
		return logger, io.NopCloser(nil), nil
	}

	path, err := Path()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get log path: %w", err)
	}
	f, err := Open(path)
	if err != nil {
		return nil, nil, err
	}

	logger := NewWriter(f, lvl)
	log.SetDefault(logger)
	return logger, f, nil
}

// Open opens path for appending, creating parent directories as needed.
func Open(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	// #nosec G304 - path is the application's own log file
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// NewWriter returns a logfmt logger at level writing to w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       log.LogfmtFormatter,
	})
}
