package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs one JSON object per record for log collectors.
	FormatJSON Format = "json"
	// FormatText outputs key=value records for terminals.
	FormatText Format = "text"
)

// Deployment environments understood by WithEnvironment.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. Panics for unknown formats so that a
// misconfigured binary fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination writer. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithEnvironment applies per-environment defaults and tags records with the
// service and environment names. Production and staging log JSON at INFO;
// anything else is treated as development and logs text at DEBUG.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		switch env {
		case Production, "prod":
			env = Production
			c.level, c.format = slog.LevelInfo, FormatJSON
		case Staging, "stage":
			env = Staging
			c.level, c.format = slog.LevelInfo, FormatJSON
		default:
			env = Development
			c.level, c.format = slog.LevelDebug, FormatText
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", env))
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// defaultConfig writes JSON at INFO to stderr, keeping stdout free for
// command output.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stderr,
	}
}

// New creates a configured slog.Logger. Options are applied in order, so
// later options override earlier ones.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
