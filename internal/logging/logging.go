// Package logging builds the zerolog logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Config struct {
	// Level zerolog level name: trace, debug, info, warn, error, disabled.
	Level string
	// Format console or json.
	Format string
	// File path to append logs to. Empty means Output.
	File string
	// Output default writer, os.Stderr when nil.
	Output io.Writer
}

// New returns a logger for cfg and a function releasing the log file, if any.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
		}
		level = parsed
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	closer := noop
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: cfg.File != ""}
	case FormatJSON:
	default:
		_ = closer()
		return zerolog.Nop(), noop, fmt.Errorf("invalid log format '%s'", cfg.Format)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	return logger, closer, nil
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
