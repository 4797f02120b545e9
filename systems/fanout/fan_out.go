// Package fanout contains implementation of ordered application events fan-out.
package fanout

import (
	"strconv"
	"sync"

	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/go-home-io/camera/utils"
	"github.com/gobwas/glob"
)

const (
	// Logger system representation.
	logSystem = "fanout"
)

// ConstructFanOut has data required for a new fan-out.
type ConstructFanOut struct {
	Logger common.ILoggerProvider
	Buffer int
}

// Single subscriber.
type subscriber struct {
	pattern glob.Glob
	queue   chan *common.Event
	dropped int
}

// Implements IEventFanOutProvider.
type provider struct {
	sync.Mutex
	publish sync.Mutex

	logger      common.ILoggerProvider
	buffer      int
	subscribers map[int64]*subscriber
}

// NewFanOut constructs new FanOut provider.
// Every subscriber gets a buffered channel of the provided size.
func NewFanOut(ctor *ConstructFanOut) providers.IEventFanOutProvider {
	buffer := ctor.Buffer
	if buffer < 0 {
		buffer = 0
	}

	return &provider{
		logger:      ctor.Logger,
		buffer:      buffer,
		subscribers: make(map[int64]*subscriber),
	}
}

// Subscribe allows to subscribe to events with names matching the pattern.
func (p *provider) Subscribe(pattern string) (int64, chan *common.Event, error) {
	if "" == pattern {
		pattern = "*"
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, nil, &ErrWrongPattern{Pattern: pattern}
	}

	p.Lock()
	defer p.Unlock()

	s := &subscriber{
		pattern: g,
		queue:   make(chan *common.Event, p.buffer),
	}

	id := utils.NewID()
	p.subscribers[id] = s
	return id, s.queue, nil
}

// Unsubscribe allows to un-subscribe from the events.
// Subscriber's channel is closed.
func (p *provider) Unsubscribe(id int64) {
	p.Lock()
	s, ok := p.subscribers[id]
	delete(p.subscribers, id)
	p.Unlock()

	if !ok {
		return
	}

	p.publish.Lock()
	defer p.publish.Unlock()
	close(s.queue)
}

// Publish broadcasts event to all matching subscribers.
// Publishing never blocks: subscriber with a full buffer misses the event.
// Delivered events keep publishing order.
func (p *provider) Publish(event *common.Event) {
	p.publish.Lock()
	defer p.publish.Unlock()

	p.Lock()
	ids := make([]int64, 0, len(p.subscribers))
	subscribers := make([]*subscriber, 0, len(p.subscribers))
	for k, v := range p.subscribers {
		ids = append(ids, k)
		subscribers = append(subscribers, v)
	}
	p.Unlock()

	name := event.Type.String()
	for ii, s := range subscribers {
		if !s.pattern.Match(name) {
			continue
		}

		select {
		case s.queue <- event:
			if s.dropped > 0 {
				p.logger.Info("Subscriber caught up", common.LogSystemToken, logSystem,
					common.LogIDToken, strconv.FormatInt(ids[ii], 10),
					common.LogValueToken, strconv.Itoa(s.dropped))
				s.dropped = 0
			}
		default:
			if 0 == s.dropped {
				p.logger.Warn("Subscriber is too slow, dropping events", common.LogSystemToken, logSystem,
					common.LogIDToken, strconv.FormatInt(ids[ii], 10), common.LogEventToken, name)
			}
			s.dropped++
		}
	}
}
