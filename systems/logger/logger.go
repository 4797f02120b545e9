// Package logger provides logger implementations.
package logger

import (
	"io"
	"strings"

	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/plugins/logger"
)

const (
	// ProviderConsole describes colored console logger.
	ProviderConsole = "console"
	// ProviderLogrus describes logrus logger.
	ProviderLogrus = "logrus"
)

// LogSeverity orders log levels.
type LogSeverity int

// Returns level severity.
func severityOf(level logger.LogLevel) LogSeverity {
	switch level {
	case logger.Debug:
		return 0
	case logger.Warning:
		return 2
	case logger.Error:
		return 3
	}

	return 1
}

// Logger provider wrapper implementation.
type provider struct {
	logger  logger.ILogger
	session string
}

// ConstructLogger has data required for a new logger.
type ConstructLogger struct {
	Provider string
	Level    string
	Format   string
	Output   io.Writer
	Session  string
}

// NewLoggerProvider constructs a new logger.
func NewLoggerProvider(ctor *ConstructLogger) (common.ILoggerProvider, error) {
	prov := provider{
		session: ctor.Session,
	}

	level := logger.LogLevelString(ctor.Level)
	switch strings.ToLower(ctor.Provider) {
	case "", ProviderConsole:
		prov.logger = newConsoleLogger(level, ctor.Output)
	case ProviderLogrus:
		prov.logger = newLogrusLogger(level, logger.FormatString(ctor.Format), ctor.Output)
	default:
		return nil, &ErrUnknownProvider{Provider: ctor.Provider}
	}

	return &prov, nil
}

// Debug sends debug level message.
func (p *provider) Debug(msg string, fields ...string) {
	p.logger.Debug(msg, p.prepareFields(fields...)...)
}

// Info sends info level message.
func (p *provider) Info(msg string, fields ...string) {
	p.logger.Info(msg, p.prepareFields(fields...)...)
}

// Warn sends warning level message.
func (p *provider) Warn(msg string, fields ...string) {
	p.logger.Warn(msg, p.prepareFields(fields...)...)
}

// Error sends error level message.
func (p *provider) Error(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorText(err))
	p.logger.Error(msg, p.prepareFields(fields...)...)
}

// Fatal sends fatal level message and exits.
func (p *provider) Fatal(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorText(err))
	p.logger.Fatal(msg, p.prepareFields(fields...)...)
}

// Flush flushes logger buffer if any.
func (p *provider) Flush() {
	p.logger.Flush()
}

// Extending logger fields with the session name.
func (p *provider) prepareFields(fields ...string) []string {
	if "" == p.session {
		return fields
	}

	return append(fields, common.LogSessionToken, p.session)
}

// Nil-safe error message.
func errorText(err error) string {
	if nil == err {
		return ""
	}

	return err.Error()
}
