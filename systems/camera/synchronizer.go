package camera

import (
	"bytes"
	"image"
	// Decoders for the preview frames.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
)

// Capture synchronizer.
// Lifecycle notifications are handled one at a time under the capture mutex
// and turned into deferred events, consumed by the session loop.
type synchronizer struct {
	capture   sync.Mutex
	capturing int32

	queue   sync.Mutex
	pending []*common.Event
	closed  bool
	notify  chan struct{}

	logger    common.ILoggerProvider
	session   string
	handler   camera.ISyncBusHandler
	bus       bus.IMessageBus
	syncID    int64
	threshold int
}

// Constructs a new synchronizer and registers sync bus handler.
func newSynchronizer(s *session, threshold int) (*synchronizer, error) {
	sc := &synchronizer{
		logger:    s.logger,
		session:   s.name,
		bus:       s.backend.Bus(),
		notify:    make(chan struct{}, 1),
		pending:   make([]*common.Event, 0),
		threshold: threshold,
	}

	if h, ok := s.backend.(camera.ISyncBusHandler); ok {
		sc.handler = h
	}

	id, err := sc.bus.SetSyncHandler(sc.handleSync)
	if err != nil {
		return nil, err
	}

	sc.syncID = id
	return sc, nil
}

// Removes bus handler and drops undelivered events.
func (s *synchronizer) close() {
	s.bus.RemoveWatch(s.syncID)

	s.queue.Lock()
	defer s.queue.Unlock()
	s.closed = true
	s.pending = nil
}

// Returns whether capture is in progress.
func (s *synchronizer) isCapturing() bool {
	return 1 == atomic.LoadInt32(&s.capturing)
}

// Invoked by the bus on the posting goroutine.
func (s *synchronizer) handleSync(msg *bus.Message) bool {
	if nil != s.handler && s.handler.HandleSyncBusMessage(msg) {
		return true
	}

	if !msg.Type.IsLifecycle() {
		return false
	}

	s.handle(msg)
	return true
}

// Translates lifecycle notification and queues deferred event.
func (s *synchronizer) handle(msg *bus.Message) {
	s.capture.Lock()
	defer s.capture.Unlock()

	event := &common.Event{
		Session: s.session,
		Time:    msg.SendTime,
	}

	switch msg.Type {
	case bus.MsgCaptureStart:
		if !atomic.CompareAndSwapInt32(&s.capturing, 0, 1) {
			s.logger.Warn("Capture start received while capturing", common.LogMessageToken, msg.Type.String())
			return
		}

		event.Type = enums.EvCaptureStart
	case bus.MsgCaptureEnd:
		if !atomic.CompareAndSwapInt32(&s.capturing, 1, 0) {
			s.logger.Warn("Capture end received while idle", common.LogMessageToken, msg.Type.String())
			return
		}

		event.Type = enums.EvCaptureEnd
	case bus.MsgPictureGot:
		event.Type = enums.EvPictureGot
		event.Filename = msg.Filename
	case bus.MsgPreviewFrame:
		img, err := decodeFrame(msg.Frame)
		if err != nil {
			s.logger.Error("Failed to decode preview frame", err)
			return
		}

		event.Type = enums.EvPreviewImage
		event.Frame = &common.PreviewFrame{Image: img}
	default:
		return
	}

	s.enqueue(event)
}

// Appends deferred event and wakes up consumer.
func (s *synchronizer) enqueue(event *common.Event) {
	s.queue.Lock()
	if s.closed {
		s.queue.Unlock()
		return
	}

	s.pending = append(s.pending, event)
	size := len(s.pending)
	s.queue.Unlock()

	if s.threshold > 0 && size > s.threshold {
		s.logger.Warn("Events backlog is growing", common.LogValueToken, strconv.Itoa(size))
	}

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Returns all queued events in the order of receipt.
func (s *synchronizer) drain() []*common.Event {
	s.queue.Lock()
	defer s.queue.Unlock()

	result := s.pending
	s.pending = make([]*common.Event, 0)
	return result
}

// Returns decoded preview image.
func decodeFrame(frame *bus.Frame) (image.Image, error) {
	if nil == frame {
		return nil, &ErrNoFrame{}
	}

	if nil != frame.Image {
		return frame.Image, nil
	}

	img, _, err := image.Decode(bytes.NewReader(frame.Data))
	return img, err
}
