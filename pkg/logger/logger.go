package logger

import (
	"log/slog"
	"os"
)

// NewHandler creates the slog handler used across the service. Nil options
// default to Info level.
func NewHandler(opts *slog.HandlerOptions) slog.Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	return slog.NewJSONHandler(os.Stdout, opts)
}
