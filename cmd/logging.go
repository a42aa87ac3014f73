package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. format "json" selects slog's JSON
// handler; anything else gets the human-readable charmbracelet handler.
func NewLogger(level, format string, writer io.Writer) *slog.Logger {
	if writer == nil {
		writer = os.Stderr
	}

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slogLevel(level)}))
	}

	lvl := log.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = log.DebugLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return slog.New(log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	}))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
