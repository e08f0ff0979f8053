// Package logging is a small leveled logger facade over log/slog with text
// and JSON handlers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a minimal structured logger facade over slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type slogLogger struct{ l *slog.Logger }

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

// NewText creates a text-handler logger writing to w with the given level.
func NewText(w io.Writer, level slog.Leveler) Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h)}
}

// NewJSON creates a json-handler logger writing to w with the given level.
func NewJSON(w io.Writer, level slog.Leveler) Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h)}
}

// New picks the handler by format name ("json" or anything else for text).
func New(w io.Writer, format string, verbose bool) Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if strings.EqualFold(format, "json") {
		return NewJSON(w, level)
	}
	return NewText(w, level)
}

// Nop returns a no-op logger.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
