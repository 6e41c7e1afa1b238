package wordlist_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakegen/pkg/wordlist"
)

type fakeRedis struct {
	lists map[string][]string
	err   error
}

func (f *fakeRedis) LRange(_ context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	if f.err != nil {
		return redis.NewStringSliceResult(nil, f.err)
	}
	return redis.NewStringSliceResult(f.lists[key], nil)
}

func TestRedisLoader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client := &fakeRedis{lists: map[string][]string{
		"fakegen:en_us/first_names": {"Melvin", "", "Jamey"},
		"fakegen:en_us/blanks":      {"", ""},
	}}
	l := wordlist.NewRedisLoader(client, "fakegen:")

	values, err := l.Load(ctx, "en_us/first_names")
	require.NoError(t, err)
	assert.Equal(t, []string{"Melvin", "Jamey"}, values)

	_, err = l.Load(ctx, "en_us/last_names")
	require.ErrorIs(t, err, wordlist.ErrListNotFound)

	_, err = l.Load(ctx, "en_us/blanks")
	require.ErrorIs(t, err, wordlist.ErrEmptyList)

	_, err = l.Load(ctx, "")
	require.ErrorIs(t, err, wordlist.ErrInvalidName)
}

func TestRedisLoader_Errors(t *testing.T) {
	t.Parallel()

	l := wordlist.NewRedisLoader(&fakeRedis{err: errors.New("connection refused")}, "")
	_, err := l.Load(context.Background(), "en_us/first_names")
	require.ErrorIs(t, err, wordlist.ErrLoadFailed)

	assert.Panics(t, func() { wordlist.NewRedisLoader(nil, "") })
}

func TestConnectRedis(t *testing.T) {
	t.Parallel()

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()
		_, err := wordlist.ConnectRedis(context.Background(), wordlist.RedisConfig{URL: "not a url"})
		require.ErrorIs(t, err, wordlist.ErrInvalidConfig)
	})

	t.Run("server not answering", func(t *testing.T) {
		t.Parallel()
		_, err := wordlist.ConnectRedis(context.Background(), wordlist.RedisConfig{
			URL:            "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		require.ErrorIs(t, err, wordlist.ErrRedisNotReady)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := wordlist.ConnectRedis(ctx, wordlist.RedisConfig{
			URL:           "redis://127.0.0.1:1/0",
			RetryAttempts: 3,
			RetryInterval: time.Second,
		})
		require.ErrorIs(t, err, wordlist.ErrRedisNotReady)
	})
}
