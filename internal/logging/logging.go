package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/kula-app/nextgreater/internal/config"
)

// NewTerminalHandler creates a human-readable handler writing to w.
// Colors are only enabled when w is a terminal.
func NewTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	})
}

// NewHandler creates the handler selected by cfg.LogFormat
func NewHandler(w io.Writer, cfg *config.Config) (slog.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	if cfg.LogFormat == config.LogFormatJSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	}
	return NewTerminalHandler(w, level), nil
}

// isTerminal reports whether w is backed by a terminal file descriptor
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
