package observability

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the process-wide JSON logger. Every line carries the
// service name and environment so log aggregation can tell deployments
// apart without per-call attrs.
func NewLogger(env string) *slog.Logger {
	return newLogger(env, os.Stdout)
}

func newLogger(env string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With("service", "resumehub", "env", env)
}
