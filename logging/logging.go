// Package logging provides the key-value Logger used across the simulator
// and host client, backed by zerolog.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "SDPSIM_LOG_LEVEL"
	EnvLogNoColor = "SDPSIM_LOG_NOCOLOR"
)

// Logger is a minimal logging interface that can be provided to the
// simulator and the host client. This allows integration with any logging
// framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

// Options controls the console logger built by New.
type Options struct {
	Level   zerolog.Level
	NoColor bool
}

// DefaultOptions returns info-level colored output.
func DefaultOptions() Options {
	return Options{Level: zerolog.InfoLevel}
}

// New builds a console zerolog logger writing to w and wraps it.
func New(w io.Writer, app string, opts Options) Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}
	zl := zerolog.New(output).Level(opts.Level).With().Timestamp().Str("app", app).Logger()
	return NewZerolog(zl)
}

// NewZerolog adapts an existing zerolog.Logger.
func NewZerolog(zl zerolog.Logger) Logger {
	return &zerologLogger{zl: zl}
}

type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, kv ...interface{}) {
	l.emit(l.zl.Debug(), msg, kv)
}

func (l *zerologLogger) Info(msg string, kv ...interface{}) {
	l.emit(l.zl.Info(), msg, kv)
}

func (l *zerologLogger) Error(msg string, kv ...interface{}) {
	l.emit(l.zl.Error(), msg, kv)
}

func (l *zerologLogger) emit(ev *zerolog.Event, msg string, kv []interface{}) {
	if ev == nil {
		return
	}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			ev = ev.Interface(key, nil)
			break
		}
		if err, ok := kv[i+1].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ApplyEnv overrides opts from SDPSIM_LOG_LEVEL and SDPSIM_LOG_NOCOLOR.
func ApplyEnv(opts *Options) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		opts.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		opts.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level. The second result is
// false for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
