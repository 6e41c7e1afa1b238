package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor returns an attribute carried by ctx. An empty slog.Attr
// means ctx carries nothing to log.
type ContextExtractor func(ctx context.Context) slog.Attr

// contextHandler appends extracted attributes to every record.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func (h contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, extract := range h.extractors {
		if attr := extract(ctx); !attr.Equal(slog.Attr{}) {
			rec.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
