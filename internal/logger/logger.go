// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
)

var (
	// nullLogger is a logger that discards all log messages.
	nullLogger = newInstance(hclog.NewNullLogger())
)

// Logger describes the interface that must be implemented by all loggers
type Logger interface {
	// WithName returns a new Logger instance with the specified name.
	WithName(name string) Logger

	// With returns a new Logger that always adds the key/value pairs to its messages.
	With(args ...interface{}) Logger

	// SetLevel updates the logger level.
	SetLevel(level Level)

	// Trace emit a message and key/value pairs at the TRACE level.
	Trace(msg string, args ...interface{})

	// Debug emit a message and key/value pairs at the DEBUG level.
	Debug(msg string, args ...interface{})

	// Info emit a message and key/value pairs at the INFO level.
	Info(msg string, args ...interface{})

	// Warn emit a message and key/value pairs at the WARN level.
	Warn(msg string, args ...interface{})

	// Error emit a message and key/value pairs at the ERROR level.
	Error(msg string, args ...interface{})

	// Fatal emit a message and key/value pairs at the FATAL level.
	// It does not terminate the process.
	Fatal(msg string, args ...interface{})

	// FatalCause emit a message at the FATAL level with the cause attached.
	FatalCause(msg string, cause error, args ...interface{})

	// IsEnabled reports whether messages at level are emitted.
	IsEnabled(level Level) bool

	// IsFatalEnabled reports whether FATAL messages are emitted.
	IsFatalEnabled() bool
}

// Options configures a logger created with NewLoggerWithOptions.
type Options struct {
	Name       string
	Level      Level
	JSONFormat bool
	Color      bool
}

// Make sure that instance is a Logger.
var _ Logger = &instance{}

// instance is a Logger implementation.
type instance struct {
	*Extended

	log hclog.Logger
}

func newInstance(log hclog.Logger) *instance {
	return &instance{
		Extended: Extend(log),
		log:      log,
	}
}

// NewLogger creates a new logger instance.
func NewLogger(writer io.Writer) Logger {
	return NewLoggerWithOptions(writer, Options{
		Level:      INFO,
		JSONFormat: true,
	})
}

// NewLoggerWithOptions creates a new logger instance writing to writer configured by opts.
func NewLoggerWithOptions(writer io.Writer, opts Options) Logger {
	color := hclog.ColorOff
	if opts.Color {
		color = hclog.AutoColor
	}

	return newInstance(hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		JSONFormat: opts.JSONFormat,
		Output:     writer,
		TimeFn:     time.Now,
		Level:      opts.Level.convertedLevel(),
		Color:      color,
	}))
}

func (i instance) WithName(name string) Logger {
	return newInstance(i.log.ResetNamed(name))
}

func (i instance) With(args ...interface{}) Logger {
	return newInstance(i.log.With(args...))
}

func (i instance) SetLevel(level Level) {
	i.log.SetLevel(level.convertedLevel())
}
