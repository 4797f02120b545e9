package camera

import (
	"strconv"

	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/patrickmn/go-cache"
)

// CaptureStill requests still picture.
func (m *Manager) CaptureStill(filename string, data interface{}) error {
	m.Lock()
	defer m.Unlock()

	s, err := m.current(enums.OpCaptureStill.String())
	if err != nil {
		return err
	}

	return m.captureStill(s, filename, data)
}

// Performs still capture, must be invoked under lock.
func (m *Manager) captureStill(s *session, filename string, data interface{}) error {
	op := enums.OpCaptureStill
	if err := s.checkMode(op.String(), enums.ModeStill, filename); err != nil {
		return err
	}

	if err := s.prepareCapture(op, filename); err != nil {
		return err
	}

	m.pending.Set(filename, s.name, cache.DefaultExpiration)
	err := s.dispatch(op, filename, func(current *camera.State) error {
		return s.backend.(camera.IStillCapturer).CaptureStill(current, filename, data)
	})
	if err != nil {
		m.pending.Delete(filename)
		return err
	}

	s.logger.Info("Still capture requested", common.LogFileToken, filename)
	return nil
}

// StartRecording starts video recording.
func (m *Manager) StartRecording(filename string, data interface{}) error {
	op := enums.OpStartVideo
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkMode(op.String(), enums.ModeVideo, filename); err != nil {
		return err
	}

	if err := s.prepareCapture(op, filename); err != nil {
		return err
	}

	err = s.dispatch(op, filename, func(current *camera.State) error {
		return s.backend.(camera.IVideoRecorder).StartVideo(current, filename, data)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Video recording started", common.LogFileToken, filename)
	return nil
}

// PauseRecording pauses or resumes video recording.
func (m *Manager) PauseRecording(resume bool, data interface{}) error {
	op := enums.OpPauseVideo
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkMode(op.String(), enums.ModeVideo, resume); err != nil {
		return err
	}

	if err := s.releaseFocusLock(op, resume); err != nil {
		return err
	}

	return s.dispatch(op, strconv.FormatBool(resume), func(current *camera.State) error {
		return s.backend.(camera.IVideoRecorder).PauseVideo(current, resume, data)
	})
}

// FinishRecording finishes video recording.
func (m *Manager) FinishRecording(data interface{}) error {
	op := enums.OpFinishVideo
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkMode(op.String(), enums.ModeVideo, nil); err != nil {
		return err
	}

	if err := s.releaseFocusLock(op, nil); err != nil {
		return err
	}

	return s.dispatch(op, nil, func(current *camera.State) error {
		return s.backend.(camera.IVideoRecorder).FinishVideo(current, data)
	})
}

// Checks capture operation and clears autofocus lock.
func (s *session) prepareCapture(op enums.Operation, filename string) error {
	if !s.caps.HasOperation(op) {
		return newFailed(op.String(), filename, &ErrNoOperation{})
	}

	return s.releaseFocusLock(op, filename)
}

// Clears autofocus lock before any capture control.
func (s *session) releaseFocusLock(op enums.Operation, value interface{}) error {
	if !s.state.Locks.Has(enums.LockAutoFocus) {
		return nil
	}

	if err := s.setLocks(s.state.Locks&^enums.LockAutoFocus, nil); err != nil {
		return newFailed(op.String(), value, err)
	}

	return nil
}
