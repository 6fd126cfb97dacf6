// Package logger provides structured logging built on zerolog, with JSON
// output for production and a console format for local development.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, fatal, panic)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is the name of the service for log context
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-offers"`
}

// Logger wraps zerolog.Logger with service-level context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger that writes to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to the given destination, which
// tests use to capture output. An unknown level falls back to info.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	base := zerolog.New(destination(cfg.Format, output)).Level(parseLevel(cfg.Level))

	ctx := base.With().Timestamp().Str("service", cfg.ServiceName)
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}
	return &Logger{Logger: ctx.Logger()}
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func destination(format string, output io.Writer) io.Writer {
	switch format {
	case "console":
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	default:
		return output
	}
}

// WithContext returns a logger with an additional context field attached
// to every entry.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithProvider returns a logger tagged with the flight provider name.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// Nop returns a disabled logger. Constructors fall back to it when the
// caller passes a nil logger.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
