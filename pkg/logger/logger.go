// Package logger builds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/gruzdev-dev/codex-users/configs"
)

// NewLogger returns a logger writing to stdout at the configured level and
// installs it as the slog default.
func NewLogger(cfg *configs.Config) *slog.Logger {
	logger := New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return logger
}

func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
