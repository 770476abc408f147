package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vertexinvest/checkout/internal/config"
)

// New creates a preconfigured JSON slog.Logger honouring the configured level.
func New(cfg *config.Config) *slog.Logger {
	level := "info"
	if cfg != nil {
		level = cfg.LogLevel
	}
	return newWithWriter(os.Stdout, ParseLevel(level))
}

// ParseLevel maps a textual level to slog.Level, falling back to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "checkout"))
}
