package logger

import (
	"context"
	"log/slog"
)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h noopHandler) WithGroup(string) slog.Handler           { return h }

// Noop returns a logger that discards every record.
// Library packages use it when no logger is configured.
func Noop() *slog.Logger {
	return slog.New(noopHandler{})
}
