package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Language is the requested catalog language in BCP-47 form
	// (e.g. "fr-FR"). Empty means the base language.
	Language string
	// LogLevel controls diagnostic verbosity: debug, info, warn or error.
	LogLevel string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; variables may come straight from the environment.
	}

	cfg := &Config{
		Language: requestedLanguage(),
		LogLevel: os.Getenv("MAPLE_LOG"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// requestedLanguage reads MAPLE_LANG, then LANG, and normalizes POSIX
// locale values like en_US.UTF-8 into BCP-47 form (en-US). An empty
// result means no preference.
func requestedLanguage() string {
	lang := os.Getenv("MAPLE_LANG")
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return lang
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: MAPLE_LOG must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}

	return nil
}
