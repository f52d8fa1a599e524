// Package config loads the vnaddress command settings from environment
// variables.
//
// It wraps github.com/joho/godotenv, which loads optional .env files, and
// github.com/caarlos0/env/v11, which parses VNADDRESS_* variables into the
// Config struct:
//
//	VNADDRESS_ENV         development | staging | production (default development)
//	VNADDRESS_DATASET     path to a .json/.yaml/.yml dataset (default: embedded)
//	VNADDRESS_LANG        language of validation messages, en | vi (default en)
//	VNADDRESS_LOG_LEVEL   debug | info | warn | error (default per environment)
//	VNADDRESS_LOG_FORMAT  text | json (default per environment)
//
// # Usage
//
//	if err := config.LoadEnv("deploy/.env"); err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log := logger.New(cfg.LoggerOptions("vnaddress")...)
//
// # Error Handling
//
// Load returns errors matching ErrParsingConfig, ErrInvalidEnvironment,
// ErrInvalidLogLevel or ErrInvalidLogFormat. LoadEnv returns
// ErrLoadingEnvFile joined with the underlying cause.
package config
