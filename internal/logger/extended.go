// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"github.com/hashicorp/go-hclog"
)

const (
	// FatalMarker prefixes every FATAL message forwarded to the sink.
	FatalMarker = "[FATAL] "
	// CauseKey is the key used to attach a cause to a sink call.
	CauseKey = "error"
)

// Sink is the subset of hclog.Logger the Extended facade relies on.
// It knows every level up to ERROR, but nothing about FATAL.
type Sink interface {
	Trace(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	IsTrace() bool
	IsDebug() bool
	IsInfo() bool
	IsWarn() bool
	IsError() bool
}

// Make sure that hclog satisfies the Sink interface.
var _ Sink = hclog.Logger(nil)

// Extended adds the FATAL level on top of a Sink. It holds no state besides the sink,
// so it is as safe for concurrent use as the sink itself.
type Extended struct {
	sink Sink
}

// Extend returns an Extended facade over sink.
func Extend(sink Sink) *Extended {
	return &Extended{sink: sink}
}

// Log emits msg at level. FATAL messages are sent to the sink ERROR method with FatalMarker
// prepended; the facade never filters the call on its own.
func (e *Extended) Log(level Level, msg string, args ...interface{}) {
	switch level {
	case TRACE:
		e.sink.Trace(msg, args...)
	case DEBUG:
		e.sink.Debug(msg, args...)
	case INFO:
		e.sink.Info(msg, args...)
	case WARN:
		e.sink.Warn(msg, args...)
	case ERROR:
		e.sink.Error(msg, args...)
	case FATAL:
		e.sink.Error(FatalMarker+msg, args...)
	default:
		e.sink.Info(msg, args...)
	}
}

// LogCause behaves like Log and attaches cause, untouched, as the first key/value pair.
func (e *Extended) LogCause(level Level, msg string, cause error, args ...interface{}) {
	withCause := make([]interface{}, 0, len(args)+2)
	withCause = append(withCause, CauseKey, cause)
	e.Log(level, msg, append(withCause, args...)...)
}

// IsEnabled reports whether the sink would emit messages at level.
func (e *Extended) IsEnabled(level Level) bool {
	switch level {
	case TRACE:
		return e.sink.IsTrace()
	case DEBUG:
		return e.sink.IsDebug()
	case INFO:
		return e.sink.IsInfo()
	case WARN:
		return e.sink.IsWarn()
	case ERROR, FATAL:
		return e.sink.IsError()
	default:
		return e.sink.IsInfo()
	}
}

func (e *Extended) Trace(msg string, args ...interface{}) { e.Log(TRACE, msg, args...) }
func (e *Extended) Debug(msg string, args ...interface{}) { e.Log(DEBUG, msg, args...) }
func (e *Extended) Info(msg string, args ...interface{})  { e.Log(INFO, msg, args...) }
func (e *Extended) Warn(msg string, args ...interface{})  { e.Log(WARN, msg, args...) }
func (e *Extended) Error(msg string, args ...interface{}) { e.Log(ERROR, msg, args...) }
func (e *Extended) Fatal(msg string, args ...interface{}) { e.Log(FATAL, msg, args...) }

// FatalCause emits msg at FATAL with cause attached.
func (e *Extended) FatalCause(msg string, cause error, args ...interface{}) {
	e.LogCause(FATAL, msg, cause, args...)
}

// IsFatalEnabled is true whenever the sink has ERROR enabled.
func (e *Extended) IsFatalEnabled() bool {
	return e.IsEnabled(FATAL)
}
