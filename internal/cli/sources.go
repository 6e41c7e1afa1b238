package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fakegen/pkg/catalog"
	"github.com/dmitrymomot/fakegen/pkg/wordlist"
)

// catalogOptions translates the configuration into catalog options. The
// returned closer releases connections opened for remote word lists.
func (a *app) catalogOptions(ctx context.Context) ([]catalog.Option, io.Closer, error) {
	cfg := a.cfg
	opts := []catalog.Option{catalog.WithLogger(a.log)}
	closers := multiCloser{}

	if cfg.DefinitionsDir != "" {
		opts = append(opts, catalog.WithDefinitions(os.DirFS(cfg.DefinitionsDir)))
	}
	if cfg.WordsDir != "" {
		opts = append(opts, catalog.WithLoader(
			wordlist.NewFSLoader(os.DirFS(cfg.WordsDir), wordlist.WithExtension(".txt")),
		))
		a.log.DebugContext(ctx, "word lists from directory", slog.String("dir", cfg.WordsDir))
	}
	if cfg.S3.Bucket != "" {
		s3Loader, err := wordlist.NewS3Loader(ctx, cfg.S3)
		if err != nil {
			return nil, nil, fmt.Errorf("s3 word lists: %w", err)
		}
		opts = append(opts, catalog.WithLoader(s3Loader))
		a.log.DebugContext(ctx, "word lists from s3", slog.String("bucket", cfg.S3.Bucket))
	}
	if cfg.Redis.URL != "" {
		client, err := wordlist.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis word lists: %w", err)
		}
		closers = append(closers, client)
		opts = append(opts, catalog.WithLoader(wordlist.NewRedisLoader(client, cfg.Redis.Prefix)))
		a.log.DebugContext(ctx, "word lists from redis", slog.String("prefix", cfg.Redis.Prefix))
	}
	return opts, closers, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
