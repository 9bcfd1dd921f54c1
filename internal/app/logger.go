package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/expense-tracker/internal/config"
)

// NewLogger creates the server logger on os.Stderr and sets it as the
// default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg, strings.EqualFold(cfg.Format, "text"))
	slog.SetDefault(logger)
	return logger
}

// NewCLILogger creates a text logger for interactive tools. It never adds
// source info and does not touch the default logger, so diagnostics can go
// to a file while the terminal stays clean.
func NewCLILogger(w io.Writer, level string) *slog.Logger {
	return newLogger(w, config.LogConfig{Level: level, Format: "text"}, false)
}

func newLogger(w io.Writer, cfg config.LogConfig, addSource bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: addSource,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "expense-tracker"))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
