// Package wordlist loads newline-delimited word lists and turns them into
// pool generators.
//
// A word list is plain text with one value per line. Trailing carriage
// returns are stripped and blank lines are skipped; nothing else about the
// values is interpreted.
//
// # Sources
//
// Lists are fetched through the Loader interface. Ready-made loaders cover
// the usual places word lists live:
//
//   - FSLoader reads from any fs.FS (an embed.FS, os.DirFS, fstest.MapFS).
//   - S3Loader reads objects from an S3 bucket (or an S3-compatible store).
//   - RedisLoader reads Redis lists with LRANGE.
//
// Any function with the right signature can be used through LoaderFunc.
//
// # Registry
//
// Registry memoizes lists by name. The first Pool or Values call for a name
// loads it exactly once, even when many goroutines ask concurrently; every
// later call returns the memoized pool (or the memoized error). Pools are
// immutable, so the registry can be shared freely.
//
//	reg := wordlist.NewRegistry(wordlist.NewFSLoader(os.DirFS("./words")))
//	first, err := reg.Pool(ctx, "en_us/first_names")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(first.Sample(generator.NewSource(1)))
//
// # Errors
//
//   - ErrListNotFound  the loader has no list with that name.
//   - ErrEmptyList     the list exists but has no values.
//   - ErrInvalidName   the name cannot be mapped to a source location.
//   - ErrLoadFailed    the source failed; the cause is joined to it.
package wordlist
