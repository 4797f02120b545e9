package camera

import (
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
)

// Session events loop.
// Every application event is published from here.
func (m *Manager) loop(s *session) {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case msg := <-s.messages:
			m.processMessage(s, msg)
		case <-s.sync.notify:
			for _, e := range s.sync.drain() {
				m.publish(s, e)
			}
		}
	}
}

// Handles ordinary bus message.
func (m *Manager) processMessage(s *session, msg *bus.Message) {
	if nil == msg {
		return
	}

	if h, ok := s.backend.(camera.IBusHandler); ok && h.HandleBusMessage(msg) {
		return
	}

	event := &common.Event{Session: s.name, Time: msg.SendTime}
	switch msg.Type {
	case bus.MsgError:
		s.logger.Error("Pipeline error", msg.Err)
		if err := s.backend.Stop(); err != nil {
			s.logger.Error("Failed to stop backend", err)
		}

		event.Type = enums.EvInternalError
		event.Err = msg.Err
	case bus.MsgWarning:
		s.logger.Warn("Pipeline warning", common.LogMessageToken, errorText(msg.Err))
		return
	case bus.MsgFocusDone:
		event.Type = enums.EvFocusDone
		event.FocusStatus = msg.FocusStatus
	case bus.MsgShakeRisk:
		event.Type = enums.EvShakeRisk
	case bus.MsgStateChanged:
		event.Type = enums.EvStateChanged
		event.OldState = msg.OldState
		event.NewState = msg.NewState
		if enums.PipelineStatePlaying == msg.NewState {
			m.reassertMode(s)
		}
	case bus.MsgPictureSaved:
		m.pictureSaved(s, msg.Filename)
		return
	default:
		if msg.Type.IsLifecycle() {
			s.sync.handle(msg)
		}

		return
	}

	m.publish(s, event)
}

// Re-applies current mode once pipeline is playing.
func (m *Manager) reassertMode(s *session) {
	m.Lock()
	defer m.Unlock()

	if m.session != s || enums.ModeNone == s.state.Mode {
		return
	}

	setter, ok := s.backend.(camera.IModeSetter)
	if !ok {
		return
	}

	if err := setter.SetMode(s.state.Copy(), s.state.Mode, nil); err != nil {
		s.logger.Error("Failed to re-apply mode", err, common.LogValueToken, s.state.Mode.String())
	}
}

// Delivers picture saved event and re-issues capture if requested.
func (m *Manager) pictureSaved(s *session, filename string) {
	if _, ok := m.pending.Get(filename); ok {
		m.pending.Delete(filename)
	} else {
		s.logger.Warn("Unknown picture saved", common.LogFileToken, filename)
	}

	m.publish(s, &common.Event{
		Type:     enums.EvPictureSaved,
		Session:  s.name,
		Filename: filename,
	})

	m.Lock()
	handler := m.onSaved
	m.Unlock()

	if nil == handler || !handler(filename) {
		return
	}

	m.Lock()
	defer m.Unlock()
	if m.session != s {
		return
	}

	if err := m.captureStill(s, filename, nil); err != nil {
		s.logger.Error("Failed to retry capture", err, common.LogFileToken, filename)
	}
}

// Sends event to subscribers.
func (m *Manager) publish(s *session, event *common.Event) {
	if enums.EvPreviewImage == event.Type && nil != m.preview {
		event.Frame = m.preview.Process(event.Frame)
	}

	s.logger.Debug("Publishing event", common.LogEventToken, event.Type.String())
	if nil != m.fanOut {
		m.fanOut.Publish(event)
	}
}

// Nil-safe error message.
func errorText(err error) string {
	if nil == err {
		return ""
	}

	return err.Error()
}
