// Package logging sets up the file logger. The terminal belongs to the UI,
// so nothing is ever written to stdout or stderr from here.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options selects the log destination and verbosity.
type Options struct {
	// FilePath is appended to; empty discards all records.
	FilePath string
	// Trace enables debug records for every list change.
	Trace bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a JSON logger and the closer for its file. Missing parent
// directories are created.
func Open(opt Options) (*slog.Logger, io.Closer, error) {
	path := strings.TrimSpace(opt.FilePath)
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, opt.Trace), f, nil
}

// New builds a JSON logger on w.
func New(w io.Writer, trace bool) *slog.Logger {
	level := slog.LevelInfo
	if trace {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
