// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error, fatal, panic, disabled.
	// Default: info
	Level string

	// Format is the output format: json or console.
	// Default: json
	Format string

	// Caller includes caller file and line number in logs.
	Caller bool

	// Timestamp enables timestamps in log output.
	// Default: true
	Timestamp bool

	// Output is the writer for log output.
	// Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// serviceName is attached to every log line so that the scoring service can
// be told apart from its gateway peers in a shared log pipeline.
const serviceName = "gamesphere"

// levelAliases maps accepted spellings that zerolog does not know.
var levelAliases = map[string]string{
	"warning": "warn",
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before Init is called from main
func init() {
	log = build(DefaultConfig())
}

// Init replaces the global logger. Later calls reconfigure it.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	log = l
	mu.Unlock()
}

// build creates a logger from cfg and applies its level globally.
func build(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	level, _ := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	ctx := zerolog.New(out).With().Str("service", serviceName)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// parseLevel resolves a configured level name. Unknown or empty names
// resolve to info and report false.
func parseLevel(name string) (zerolog.Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := levelAliases[name]; ok {
		name = alias
	}
	if name == "" {
		return zerolog.InfoLevel, false
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel, false
	}
	return level, true
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	_, ok := parseLevel(level)
	return ok
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the global logger instance.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	log = l
	mu.Unlock()
}

// With creates a child logger context with additional fields.
func With() zerolog.Context {
	return Logger().With()
}

// WithComponent creates a child logger with a component field, e.g. the
// engine logs as component "recommend" and the gateway as "gateway".
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts a new message with info level.
//
//	logging.Info().Str("addr", addr).Msg("HTTP server service added")
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a new message with warning level.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts a new message with error level.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal starts a new message with fatal level. The process exits after
// the message is written.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// Err starts an error level message with err attached, or an info level
// message when err is nil.
func Err(err error) *zerolog.Event {
	l := Logger()
	return l.Err(err)
}

// NewTestLogger creates a logger that writes JSON to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
