package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sozercan/textlens/internal/config"
)

// Init installs the default slog logger described by cfg.
func Init(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		slog.Warn("Invalid log level, using info", "level", cfg.Level, "error", err)
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
