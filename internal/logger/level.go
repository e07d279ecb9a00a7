// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

//go:generate ${TOOLS_BIN}/stringer -type=Level
type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	// FATAL is not known by the underlying sink; it is emitted at ERROR with FatalMarker.
	FATAL
)

// AllLevels lists every supported level from the least to the most severe.
var AllLevels = []Level{TRACE, DEBUG, INFO, WARN, ERROR, FATAL}

func LevelFromString(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// IsValid reports whether the level is one of the known levels.
func (l Level) IsValid() bool {
	return l >= TRACE && l <= FATAL
}

// convertedLevel returns the hclog threshold for l. FATAL maps onto hclog.Error,
// the highest level the sink can filter on.
func (l Level) convertedLevel() hclog.Level {
	switch l {
	case TRACE:
		return hclog.Trace
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARN:
		return hclog.Warn
	case ERROR, FATAL:
		return hclog.Error
	default:
		return hclog.Info
	}
}
