// Package logging configures the zerolog loggers handed to the resolver,
// the normalizer and the command line.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process logger used by the command line.
var Logger = zerolog.Nop()

// Level represents log levels.
type Level = zerolog.Level

const (
	DebugLevel    = zerolog.DebugLevel
	InfoLevel     = zerolog.InfoLevel
	WarnLevel     = zerolog.WarnLevel
	ErrorLevel    = zerolog.ErrorLevel
	DisabledLevel = zerolog.Disabled
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// Pretty switches to zerolog's console writer.
	Pretty bool
	// TimeFormat defaults to RFC3339.
	TimeFormat string
}

// DefaultConfig logs warnings and above as JSON to stderr.
func DefaultConfig() Config {
	return Config{
		Level:      WarnLevel,
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// New builds a logger from cfg.
func New(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}

	output := cfg.Output
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: cfg.TimeFormat}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// Init replaces Logger with one built from cfg and returns it.
func Init(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = cfg.TimeFormat
	if zerolog.TimeFieldFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	}

	Logger = New(cfg)

	return Logger
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel parses a level name, case-insensitively. Unknown names yield
// WarnLevel.
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "OFF", "NONE", "DISABLED":
		return DisabledLevel
	default:
		return WarnLevel
	}
}
