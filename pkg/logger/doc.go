// Package logger builds log/slog loggers from functional options so every
// binary in the module logs the same way.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format, applies the minimum level and attaches static attributes such as
// the service name. Helper constructors in attr.go (Error, Dataset, Province,
// Ward, ...) keep attribute keys consistent between call sites.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "vnaddress"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Info("dataset loaded", logger.Dataset(path))
//
// # Configuration
//
//   - WithEnvironment – development (text, DEBUG) or staging/production (JSON, INFO).
//   - WithFormat      – override the output format; panics on unknown formats.
//   - WithLevel       – override the minimum level (see ParseLevel).
//   - WithOutput      – destination writer; stderr by default.
//   - WithAttr        – static attributes added to every record.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
