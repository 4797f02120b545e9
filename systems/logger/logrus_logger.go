package logger

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/go-home-io/camera/plugins/logger"
	"github.com/sirupsen/logrus"
)

// Buffered writer safe for concurrent usage.
type syncWriter struct {
	sync.Mutex
	buf *bufio.Writer
}

// Write appends data to the buffer.
func (w *syncWriter) Write(p []byte) (int, error) {
	w.Lock()
	defer w.Unlock()
	return w.buf.Write(p)
}

// Flush writes buffered data to the underlying writer.
func (w *syncWriter) Flush() error {
	w.Lock()
	defer w.Unlock()
	return w.buf.Flush()
}

// Logrus based logger.
type logrusLogger struct {
	logger *logrus.Logger
	out    *syncWriter
}

// Constructs a new logrus logger.
func newLogrusLogger(level logger.LogLevel, format logger.Format, output io.Writer) logger.ILogger {
	if nil == output {
		output = os.Stdout
	}

	l := &logrusLogger{
		logger: logrus.New(),
		out:    &syncWriter{buf: bufio.NewWriter(output)},
	}

	l.logger.Out = l.out
	l.logger.SetLevel(logrusLevel(level))
	if logger.JSON == format {
		l.logger.Formatter = &logrus.JSONFormatter{}
	} else {
		l.logger.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}

	return l
}

// Debug sends debug level message.
func (l *logrusLogger) Debug(msg string, fields ...string) {
	l.logger.WithFields(logrusFields(fields...)).Debug(msg)
}

// Info sends info level message.
func (l *logrusLogger) Info(msg string, fields ...string) {
	l.logger.WithFields(logrusFields(fields...)).Info(msg)
}

// Warn sends warning level message.
func (l *logrusLogger) Warn(msg string, fields ...string) {
	l.logger.WithFields(logrusFields(fields...)).Warn(msg)
}

// Error sends error level message.
func (l *logrusLogger) Error(msg string, fields ...string) {
	l.logger.WithFields(logrusFields(fields...)).Error(msg)
}

// Fatal sends fatal level message and exits.
func (l *logrusLogger) Fatal(msg string, fields ...string) {
	l.logger.WithFields(logrusFields(fields...)).Error(msg)
	l.Flush()
	os.Exit(1)
}

// Flush writes buffered entries.
func (l *logrusLogger) Flush() {
	//noinspection GoUnhandledErrorResult
	l.out.Flush() // nolint: gosec
}

// Converts key-value pairs into logrus fields.
func logrusFields(fields ...string) logrus.Fields {
	result := logrus.Fields{}
	for k, v := range withFields(fields...) {
		result[k] = v
	}

	return result
}

// Maps configured level.
func logrusLevel(level logger.LogLevel) logrus.Level {
	switch level {
	case logger.Debug:
		return logrus.DebugLevel
	case logger.Warning:
		return logrus.WarnLevel
	case logger.Error:
		return logrus.ErrorLevel
	}

	return logrus.InfoLevel
}
