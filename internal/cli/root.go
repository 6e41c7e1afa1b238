// Package cli implements the fakegen command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fakegen/pkg/config"
	"github.com/dmitrymomot/fakegen/pkg/logger"
	"github.com/dmitrymomot/fakegen/pkg/server"
)

// Version is set at build time.
var Version = "dev"

// app carries state shared by the subcommands once the root pre-run has
// loaded configuration.
type app struct {
	cfg Config
	log *slog.Logger

	// flags shared by several subcommands
	locale    string
	logLevel  string
	logFormat string
	wordsDir  string
	defsDir   string
}

// NewRootCmd creates the fakegen command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Noop()}

	root := &cobra.Command{
		Use:   "fakegen",
		Short: "Generate reproducible fake data",
		Long: `fakegen samples human-plausible fake data (names, addresses, lorem ipsum,
emails, phone numbers) from locale catalogs. The same seed always yields the
same values.

Configuration is read from FAKEGEN_* environment variables and ./.env;
flags take precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.locale, "locale", "l", "", "catalog locale, BCP 47 tag or name (default from FAKEGEN_LOCALE)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.wordsDir, "words-dir", "", "directory with extra word lists (<name>.txt)")
	pf.StringVar(&a.defsDir, "defs-dir", "", "directory with catalog definitions (<locale>.yaml)")

	_ = root.RegisterFlagCompletionFunc("log-format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(logger.FormatText), string(logger.FormatJSON)}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newGenerateCmd(a),
		newListCmd(a),
		newLocalesCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	if err := config.Load(&a.cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return err
	}

	if a.locale != "" {
		a.cfg.Locale = a.locale
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.LogFormat = a.logFormat
	}
	if a.wordsDir != "" {
		a.cfg.WordsDir = a.wordsDir
	}
	if a.defsDir != "" {
		a.cfg.DefinitionsDir = a.defsDir
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, "fakegen"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("version", Version)),
		logger.WithContextExtractors(server.RequestIDExtractor),
	)
	return nil
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
