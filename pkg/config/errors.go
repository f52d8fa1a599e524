package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when a requested .env file cannot be loaded.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidEnvironment is returned for an unknown VNADDRESS_ENV value.
	ErrInvalidEnvironment = errors.New("invalid environment")

	// ErrInvalidLogLevel is returned for an unknown VNADDRESS_LOG_LEVEL value.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat is returned for an unknown VNADDRESS_LOG_FORMAT value.
	ErrInvalidLogFormat = errors.New("invalid log format")
)
