//+build !release

package mocks

import (
	"sync"

	"github.com/go-home-io/camera/plugins/common"
)

// FakeLogger is a fake logger recording messages.
type FakeLogger struct {
	sync.Mutex
	callback func(string)
	messages []string
	flushes  int
}

// Records message and invokes callback.
func (p *FakeLogger) record(msg string) {
	p.Lock()
	p.messages = append(p.messages, msg)
	p.Unlock()

	if p.callback != nil {
		p.callback(msg)
	}
}

// Debug records debug level message.
func (p *FakeLogger) Debug(msg string, fields ...string) {
	p.record(msg)
}

// Info records info level message.
func (p *FakeLogger) Info(msg string, fields ...string) {
	p.record(msg)
}

// Warn records warning level message.
func (p *FakeLogger) Warn(msg string, fields ...string) {
	p.record(msg)
}

// Error records error level message.
func (p *FakeLogger) Error(msg string, err error, fields ...string) {
	p.record(msg)
}

// Fatal records fatal level message.
func (p *FakeLogger) Fatal(msg string, err error, fields ...string) {
	p.record(msg)
}

// Flush counts flushes.
func (p *FakeLogger) Flush() {
	p.Lock()
	defer p.Unlock()
	p.flushes++
}

// Messages returns recorded messages.
func (p *FakeLogger) Messages() []string {
	p.Lock()
	defer p.Unlock()
	return append([]string{}, p.messages...)
}

// Flushes returns number of flushes.
func (p *FakeLogger) Flushes() int {
	p.Lock()
	defer p.Unlock()
	return p.flushes
}

// FakeNewLogger creates a fake logger provider.
func FakeNewLogger(callback func(string)) *FakeLogger {
	return &FakeLogger{
		callback: callback,
	}
}

// Interface check.
var _ common.ILoggerProvider = (*FakeLogger)(nil)
