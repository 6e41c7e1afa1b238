package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fakegen/pkg/catalog"
	"github.com/dmitrymomot/fakegen/pkg/logger"
	"github.com/dmitrymomot/fakegen/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sampling API over HTTP",
		Long: `Serve every locale over HTTP:

  GET /healthz
  GET /v1/locales
  GET /v1/generators?locale=
  GET /v1/generators/{name}?locale=&seed=&count=`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}

			opts, closer, err := a.catalogOptions(ctx)
			if err != nil {
				return err
			}
			defer closer.Close()

			catalogs, err := catalog.LoadAll(ctx, opts...)
			if err != nil {
				return err
			}

			log := a.log.With(logger.Component("http"))
			r, err := server.Router(server.RouterOptions{
				Catalogs:      catalogs,
				DefaultLocale: a.cfg.Locale,
				MaxCount:      a.cfg.MaxCount,
				Logger:        log,
			})
			if err != nil {
				return err
			}
			return server.NewFromConfig(a.cfg.HTTP, server.WithLogger(log)).Run(ctx, r)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default FAKEGEN_HTTP_ADDR or :8080)")
	return cmd
}
