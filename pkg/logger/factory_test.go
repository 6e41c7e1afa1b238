package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakegen/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello", logger.Generator("lorem.word"))
		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "generator=lorem.word")
	})

	t.Run("last format wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithFormat(logger.FormatJSON),
		)
		log.Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(logger.Locale("fr_fr")),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "fr_fr", entry["locale"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(ctx context.Context) slog.Attr {
				id, _ := ctx.Value(key{}).(string)
				return logger.RequestID(id)
			}),
		)
		ctx := context.WithValue(context.Background(), key{}, "42")
		log.With(logger.Count(1)).WithGroup("sample").InfoContext(ctx, "context msg", logger.Seed(7))
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.EqualValues(t, 1, entry["count"])
		group, ok := entry["sample"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "42", group["request_id"])
		assert.Equal(t, "7", fmt.Sprint(group["seed"]))
	})

	t.Run("skips empty extracted attrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(context.Context) slog.Attr {
				return logger.Error(nil)
			}),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Len(t, entry, 3)
	})
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat(" TEXT ")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	require.ErrorIs(t, err, logger.ErrInvalidFormat)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	require.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestNoop(t *testing.T) {
	t.Parallel()
	log := logger.Noop()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.With(logger.Count(1)).WithGroup("g").Error("discarded")
}
