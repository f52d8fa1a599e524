package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/vnaddress/pkg/logger"
)

// Config holds the settings read by the vnaddress command. The library
// packages never read the environment themselves.
type Config struct {
	// Env selects logging defaults: development, staging or production
	// (dev, stage and prod are accepted as aliases).
	Env string `env:"VNADDRESS_ENV" envDefault:"development"`

	// Dataset is a path to a JSON or YAML dataset replacing the embedded one.
	// Empty means the embedded dataset.
	Dataset string `env:"VNADDRESS_DATASET"`

	// Lang is the BCP 47 tag used for validation messages, e.g. "vi" or "en".
	Lang string `env:"VNADDRESS_LANG" envDefault:"en"`

	// LogLevel overrides the environment default: debug, info, warn or error.
	LogLevel string `env:"VNADDRESS_LOG_LEVEL"`

	// LogFormat overrides the environment default: text or json.
	LogFormat string `env:"VNADDRESS_LOG_FORMAT"`
}

var defaultEnvLoaded sync.Once

// LoadEnv loads variables from the given .env files, or from ./.env when no
// paths are given. Variables already set in the process environment win.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Load parses the process environment into a Config and validates it.
// The first call also tries ./.env; a missing file is not an error.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Env) {
	case logger.Development, "dev", logger.Staging, "stage", logger.Production, "prod":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Env)
	}

	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Join(ErrInvalidLogLevel, err)
		}
	}

	switch logger.Format(strings.ToLower(c.LogFormat)) {
	case "", logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// LoggerOptions translates the logging settings into logger options.
// Environment defaults come first so explicit level and format settings
// override them.
func (c Config) LoggerOptions(service string) []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(strings.ToLower(c.Env), service)}
	if c.LogLevel != "" {
		if level, err := logger.ParseLevel(c.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(level))
		}
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(strings.ToLower(c.LogFormat))))
	}
	return opts
}
