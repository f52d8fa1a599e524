package address

import (
	"log/slog"

	"github.com/dmitrymomot/vnaddress/pkg/logger"
)

// Option configures how a Database is built.
type Option func(*options)

type options struct {
	logger *slog.Logger
	source string
}

// WithLogger sets the logger used to report load summaries and replaced
// duplicate provinces. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSource labels the dataset in log records, e.g. with its file path.
func WithSource(name string) Option {
	return func(o *options) {
		if name != "" {
			o.source = name
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: logger.Discard(),
		source: "memory",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
