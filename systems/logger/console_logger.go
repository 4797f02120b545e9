package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/go-home-io/camera/plugins/logger"
)

// Default console logger.
type consoleLogger struct {
	level  LogSeverity
	output io.Writer
}

// Constructs a new console logger.
func newConsoleLogger(level logger.LogLevel, output io.Writer) logger.ILogger {
	if nil == output {
		output = color.Output
	}

	return &consoleLogger{
		level:  severityOf(level),
		output: output,
	}
}

// Debug prints debug level message.
func (p *consoleLogger) Debug(msg string, fields ...string) {
	p.print(logger.Debug, msg, fields, color.FgCyan)
}

// Info prints info level message.
func (p *consoleLogger) Info(msg string, fields ...string) {
	p.print(logger.Info, msg, fields, color.FgGreen)
}

// Warn prints warning level message.
func (p *consoleLogger) Warn(msg string, fields ...string) {
	p.print(logger.Warning, msg, fields, color.FgYellow)
}

// Error prints error level message.
func (p *consoleLogger) Error(msg string, fields ...string) {
	p.print(logger.Error, msg, fields, color.FgRed)
}

// Fatal prints fatal level message and exits.
func (p *consoleLogger) Fatal(msg string, fields ...string) {
	p.print(logger.Error, msg, fields, color.FgRed)
	os.Exit(1)
}

// Flush don't needed for a console logger.
func (p *consoleLogger) Flush() {
}

// Checks level and prints the message.
func (p *consoleLogger) print(level logger.LogLevel, msg string, fields []string, c color.Attribute) {
	if severityOf(level) < p.level {
		return
	}

	colorPrint(p.output, output(msg, withFields(fields...)), c)
}

// Helper method to add generic fields to the output.
func withFields(fields ...string) map[string]string {
	fLen := len(fields)
	result := make(map[string]string, int(fLen/2))
	for ii := 0; ii < fLen; ii += 2 {
		if ii+1 >= fLen {
			break
		}

		result[fields[ii]] = fields[ii+1]
	}

	return result
}

// Prepares final string.
func output(msg string, fields map[string]string) string {
	newM := fmt.Sprintf("%s   %s", time.Now().Local().Format(time.StampMilli), msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	for _, k := range keys {
		newM = fmt.Sprintf("%s\n          %s: %s", newM, k, fields[k])
	}

	return newM
}

// Outputs final string.
func colorPrint(w io.Writer, msg string, c color.Attribute) {
	msgC := color.New(c)
	//noinspection GoUnhandledErrorResult
	msgC.Fprintln(w, msg) // nolint: gosec
}
