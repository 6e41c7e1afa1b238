package cli

import (
	"github.com/dmitrymomot/fakegen/pkg/server"
	"github.com/dmitrymomot/fakegen/pkg/wordlist"
)

// EnvPrefix is prepended to every environment variable read by the CLI.
const EnvPrefix = "FAKEGEN_"

// Config is read from FAKEGEN_* variables (and ./.env). Flags override it.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Locale   string `env:"LOCALE" envDefault:"en_us"`
	Seed     uint64 `env:"SEED"` // 0 draws a random seed
	MaxCount int    `env:"MAX_COUNT" envDefault:"1000"`

	// Extra word-list sources, consulted before the embedded lists in the
	// order Redis, S3, directory.
	WordsDir string `env:"WORDS_DIR"`
	Redis    wordlist.RedisConfig
	S3       wordlist.S3Config

	// DefinitionsDir replaces the embedded catalog definitions.
	DefinitionsDir string `env:"DEFINITIONS_DIR"`

	HTTP server.Config
}
