package app

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"
)

// NewLogger builds the process logger and installs it as the slog default
// and as the rasterizer's logger.
func NewLogger(w io.Writer, json, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if json {
		h = slog.NewJSONHandler(w, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	gg.SetLogger(logger)
	return logger
}
