// Package logger builds *slog.Logger values for fakegen's front ends and
// libraries.
//
// New assembles a text or JSON handler from functional options. Context
// extractors add attributes pulled from the context (the HTTP request id, for
// instance) to every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "fakegen"),
//		logger.WithContextExtractors(server.RequestIDExtractor),
//	)
//	log.InfoContext(ctx, "sampled",
//		logger.Generator("names.full_name"),
//		logger.Locale("en_us"),
//		logger.Seed(42),
//	)
//
// Attribute helpers keep key names consistent across packages. Error returns an
// empty attribute for a nil error, so callers can pass err unconditionally.
//
// Libraries accept a logger through their options and fall back to Noop.
package logger
