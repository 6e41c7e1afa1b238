package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Generator records a generator name under the key "generator".
func Generator(name string) slog.Attr {
	return slog.String("generator", name)
}

// Locale records a catalog locale under the key "locale".
// An empty locale yields an empty Attr.
func Locale(locale string) slog.Attr {
	if locale == "" {
		return slog.Attr{}
	}
	return slog.String("locale", locale)
}

// Seed records the random source seed under the key "seed".
func Seed(seed uint64) slog.Attr {
	return slog.Uint64("seed", seed)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// List records a word list name under the key "list".
func List(name string) slog.Attr {
	return slog.String("list", name)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
