// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//		Locale   string `env:"LOCALE" envDefault:"en_us"`
//		MaxCount int    `env:"MAX_COUNT" envDefault:"1000"`
//	}
//
//	if err := config.LoadEnv(); err != nil {
//		return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FAKEGEN_")); err != nil {
//		return err
//	}
//
// LoadEnv never overrides variables already present in the process
// environment, so deployment settings beat checked-in defaults.
//
// Errors wrap the sentinels ErrParsingConfig, ErrEnvFile and ErrNilPointer and
// can be compared with errors.Is.
package config
