package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes how Load reads the environment.
type Option func(*env.Options)

// WithPrefix reads every variable as prefix+name, e.g. "FAKEGEN_".
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// WithRequiredIfNoDefault treats every field without envDefault as required.
func WithRequiredIfNoDefault() Option {
	return func(o *env.Options) { o.RequiredIfNoDef = true }
}

// LoadEnv copies variables from .env files into the process environment.
// Variables already set in the environment are never overwritten, and later
// files take precedence over earlier ones. Without paths it reads ./.env if
// the file exists.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		paths = []string{".env"}
	}

	vars, err := godotenv.Read(paths...)
	if err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	for k, v := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return errors.Join(ErrEnvFile, err)
		}
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v according to its env struct tags.
//
//	type ServerConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	err := config.Load(&cfg, config.WithPrefix("FAKEGEN_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var options env.Options
	for _, opt := range opts {
		opt(&options)
	}

	if err := env.ParseWithOptions(v, options); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
