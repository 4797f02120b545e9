//+build !release

package mocks

import (
	"sync"

	"github.com/go-home-io/camera/plugins/bus"
)

// FakeBus is a fake in-process message bus.
type FakeBus struct {
	sync.Mutex
	watches  map[int64]chan *bus.Message
	handlers map[int64]func(*bus.Message) bool
	next     int64
	addErr   error
}

// AddWatch registers queue.
func (b *FakeBus) AddWatch(queue chan *bus.Message) (int64, error) {
	b.Lock()
	defer b.Unlock()

	if nil != b.addErr {
		return 0, b.addErr
	}

	b.next++
	b.watches[b.next] = queue
	return b.next, nil
}

// SetSyncHandler registers sync handler.
func (b *FakeBus) SetSyncHandler(handler func(*bus.Message) bool) (int64, error) {
	b.Lock()
	defer b.Unlock()

	b.next++
	b.handlers[b.next] = handler
	return b.next, nil
}

// RemoveWatch removes watch or handler.
func (b *FakeBus) RemoveWatch(id int64) {
	b.Lock()
	defer b.Unlock()

	delete(b.watches, id)
	delete(b.handlers, id)
}

// Post sends message to all watches.
func (b *FakeBus) Post(msg *bus.Message) error {
	b.Lock()
	queues := make([]chan *bus.Message, 0, len(b.watches))
	for _, v := range b.watches {
		queues = append(queues, v)
	}
	b.Unlock()

	for _, v := range queues {
		v <- msg
	}

	return nil
}

// PostSync invokes sync handlers, falls back to watches.
func (b *FakeBus) PostSync(msg *bus.Message) error {
	b.Lock()
	handlers := make([]func(*bus.Message) bool, 0, len(b.handlers))
	for _, v := range b.handlers {
		handlers = append(handlers, v)
	}
	b.Unlock()

	for _, v := range handlers {
		if v(msg) {
			return nil
		}
	}

	return b.Post(msg)
}

// Close does nothing.
func (b *FakeBus) Close() {
}

// Subscriptions returns number of active watches and handlers.
func (b *FakeBus) Subscriptions() int {
	b.Lock()
	defer b.Unlock()
	return len(b.watches) + len(b.handlers)
}

// FakeNewBus creates a fake message bus.
// Non-nil addErr is returned from AddWatch.
func FakeNewBus(addErr error) *FakeBus {
	return &FakeBus{
		watches:  make(map[int64]chan *bus.Message),
		handlers: make(map[int64]func(*bus.Message) bool),
		addErr:   addErr,
	}
}
