// Package logger builds the application's structured slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level      string // debug, info, warn or error
	Format     string // "json" or "text"
	OutputPath string // file path; empty or "stdout" writes to stdout
}

// ParseLevel maps a level name to a slog level, defaulting to info.
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

// New creates a logger writing to w.
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init opens the configured output, builds the logger and installs it as the
// slog default. The returned closer releases the output file.
func Init(cfg Config) (*slog.Logger, io.Closer, error) {
	var out io.WriteCloser = nopCloser{os.Stdout}
	if cfg.OutputPath != "" && cfg.OutputPath != "stdout" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
	}

	l := New(out, cfg)
	slog.SetDefault(l)
	return l, out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
