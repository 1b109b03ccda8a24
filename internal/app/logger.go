package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/plantcare-backend/internal/config"
)

const appName = "plantcare"

// NewLogger builds the process logger on stderr and installs it as the slog
// default. "json" is meant for production; any other format produces text
// output with source locations for development.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes to w. Every record carries the app name.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", appName))
}

// parseLevel is case-insensitive; unknown values fall back to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
