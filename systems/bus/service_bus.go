// Package bus contains in-process backend message bus.
package bus

import (
	"sync"

	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/go-home-io/camera/utils"
)

const (
	// Logs representation.
	logSystem = "service_bus"
)

// ConstructBus holds values required for a new message bus.
type ConstructBus struct {
	Logger common.ILoggerProvider
	Source string
}

// Single watch.
type watch struct {
	queue chan *bus.Message
	quit  chan struct{}
}

// Message bus provider.
type provider struct {
	sync.RWMutex

	logger   common.ILoggerProvider
	source   string
	closed   bool
	watches  map[int64]*watch
	handlers map[int64]func(*bus.Message) bool
}

// NewMessageBus constructs a new in-process message bus.
func NewMessageBus(ctor *ConstructBus) providers.IBusProvider {
	return &provider{
		logger:   ctor.Logger,
		source:   ctor.Source,
		watches:  make(map[int64]*watch),
		handlers: make(map[int64]func(*bus.Message) bool),
	}
}

// AddWatch subscribes queue to the ordinary messages.
func (p *provider) AddWatch(queue chan *bus.Message) (int64, error) {
	p.Lock()
	defer p.Unlock()

	if p.closed {
		return 0, &ErrBusClosed{}
	}

	id := utils.NewID()
	p.watches[id] = &watch{queue: queue, quit: make(chan struct{})}
	return id, nil
}

// SetSyncHandler registers handler invoked on the posting goroutine.
func (p *provider) SetSyncHandler(handler func(*bus.Message) bool) (int64, error) {
	p.Lock()
	defer p.Unlock()

	if p.closed {
		return 0, &ErrBusClosed{}
	}

	id := utils.NewID()
	p.handlers[id] = handler
	return id, nil
}

// RemoveWatch removes either watch or sync handler.
// Queue is not closed since it belongs to the subscriber.
func (p *provider) RemoveWatch(id int64) {
	p.Lock()
	w, ok := p.watches[id]
	delete(p.watches, id)
	delete(p.handlers, id)
	p.Unlock()

	if ok {
		close(w.quit)
	}
}

// Post delivers message to all watches.
// Blocks while watch queues are full.
func (p *provider) Post(msg *bus.Message) error {
	if err := p.prepare(msg); err != nil {
		return err
	}

	p.deliver(msg)
	return nil
}

// PostSync invokes sync handlers on the calling goroutine.
// If no handler consumed the message, it's delivered to the watches.
func (p *provider) PostSync(msg *bus.Message) error {
	if err := p.prepare(msg); err != nil {
		return err
	}

	p.RLock()
	handlers := make([]func(*bus.Message) bool, 0, len(p.handlers))
	for _, v := range p.handlers {
		handlers = append(handlers, v)
	}
	p.RUnlock()

	for _, h := range handlers {
		if h(msg) {
			return nil
		}
	}

	p.deliver(msg)
	return nil
}

// Close removes all subscriptions.
func (p *provider) Close() {
	p.Lock()
	defer p.Unlock()

	if p.closed {
		return
	}

	p.closed = true
	for id, w := range p.watches {
		close(w.quit)
		delete(p.watches, id)
	}

	p.handlers = make(map[int64]func(*bus.Message) bool)
}

// Validates message and fills missing fields.
func (p *provider) prepare(msg *bus.Message) error {
	if nil == msg {
		return &ErrCorruptedMessage{}
	}

	if !msg.Type.IsKnown() {
		p.logger.Warn("Received unknown message type", common.LogSystemToken, logSystem,
			common.LogMessageToken, msg.Type.String())
		return &ErrUnknownType{}
	}

	p.RLock()
	closed := p.closed
	p.RUnlock()
	if closed {
		return &ErrBusClosed{}
	}

	if "" == msg.Source {
		msg.Source = p.source
	}

	if 0 == msg.SendTime {
		msg.SendTime = utils.TimeNow()
	}

	return nil
}

// Sends message to every watch.
func (p *provider) deliver(msg *bus.Message) {
	p.RLock()
	watches := make([]*watch, 0, len(p.watches))
	for _, v := range p.watches {
		watches = append(watches, v)
	}
	p.RUnlock()

	for _, w := range watches {
		select {
		case <-w.quit:
		case w.queue <- msg:
		}
	}
}
