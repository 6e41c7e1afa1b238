// Package server exposes catalogs over HTTP.
//
// Router builds a chi router with the sampling API; Server runs any handler
// with graceful shutdown on context cancellation or SIGINT/SIGTERM.
//
//	catalogs, err := catalog.LoadAll(ctx)
//	if err != nil {
//		return err
//	}
//	r, err := server.Router(server.RouterOptions{Catalogs: catalogs, Logger: log})
//	if err != nil {
//		return err
//	}
//	return server.NewFromConfig(cfg, server.WithLogger(log)).Run(ctx, r)
//
// Sampling is reproducible: GET /v1/generators/names.full_name?seed=42&count=3
// always returns the same three names for the same catalogs. Without a seed a
// random one is drawn and echoed in the response meta, so any response can be
// replayed. Every response carries an X-Request-ID header.
package server
