package wordlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the Redis API used by RedisLoader.
// *redis.Client and *redis.ClusterClient satisfy it.
type RedisClient interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisLoader loads lists stored as Redis lists, one key per list.
type RedisLoader struct {
	client RedisClient
	prefix string
}

// NewRedisLoader returns a loader reading key prefix+name for every list.
// It panics if client is nil.
func NewRedisLoader(client RedisClient, prefix string) *RedisLoader {
	if client == nil {
		panic("wordlist: nil redis client")
	}
	return &RedisLoader{client: client, prefix: prefix}
}

// RedisConfig configures ConnectRedis.
type RedisConfig struct {
	URL            string        `env:"WORDLIST_REDIS_URL"` // redis://:password@localhost:6379/0
	Prefix         string        `env:"WORDLIST_REDIS_PREFIX" envDefault:"fakegen:"`
	RetryAttempts  int           `env:"WORDLIST_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"WORDLIST_REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"WORDLIST_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// ConnectRedis opens a client for cfg.URL and pings it until it answers,
// trying up to cfg.RetryAttempts times. The caller closes the client.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var lastErr error
	for attempt := range max(cfg.RetryAttempts, 1) {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, errors.Join(ErrRedisNotReady, ctx.Err())
			case <-time.After(cfg.RetryInterval):
			}
		}

		client := redis.NewClient(opt)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()
	}
	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// Load implements Loader. Redis does not keep empty lists, so a missing key
// is reported as ErrListNotFound.
func (l *RedisLoader) Load(ctx context.Context, name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	raw, err := l.client.LRange(ctx, l.prefix+name, 0, -1).Result()
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, fmt.Errorf("list %q: %w", name, err))
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, name)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("list %q: %w", name, ErrEmptyList)
	}
	return values, nil
}
