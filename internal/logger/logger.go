// Package logger builds the process-wide slog logger. Output always goes to
// stderr (or the given writer): stdout carries the stdio MCP protocol.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// ParseLevel maps debug, info, warn and error onto slog levels. Anything
// else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger when w is a terminal and a JSON logger otherwise.
func New(level string, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
