// Package logger contains logger backend definitions.
package logger

import (
	"strings"
)

// ILogger defines logger backend interface.
// Fields are passed as key-value pairs.
type ILogger interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, fields ...string)
	Fatal(msg string, fields ...string)
	Flush()
}

// LogLevel represents minimal log level.
type LogLevel int

const (
	// Info describes info log level.
	Info LogLevel = iota
	// Debug describes debug log level.
	Debug
	// Warning describes warn log level.
	Warning
	// Error describes error log level.
	Error
)

// LogLevelString converts configured level name.
// Unknown names fall back to info.
func LogLevelString(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning", "warn":
		return Warning
	case "error", "err":
		return Error
	case "debug", "dbg":
		return Debug
	}

	return Info
}

// Format represents output format.
type Format int

const (
	// Text describes plain text output.
	Text Format = iota
	// JSON describes JSON output.
	JSON
)

// FormatString converts configured format name.
func FormatString(format string) Format {
	if "json" == strings.ToLower(strings.TrimSpace(format)) {
		return JSON
	}

	return Text
}
