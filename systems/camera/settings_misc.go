package camera

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// Locks returns current locks.
func (m *Manager) Locks() (enums.Lock, error) {
	op := enums.OpSetLocks.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.LockNone, err
	}

	err = s.checkAnyFeature(op, KindLockNotPossible,
		enums.FeatureAutoFocus|enums.FeatureAutoExposure|enums.FeatureAutoWhiteBalance)
	if err != nil {
		return enums.LockNone, err
	}

	return s.state.Locks, nil
}

// SetLocks changes locks.
// Every requested lock requires corresponding setting to be in its auto family.
func (m *Manager) SetLocks(locks enums.Lock, data interface{}) error {
	op := enums.OpSetLocks
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if enums.LockNone != locks {
		err = s.checkFeature(op.String(), KindLockNotPossible, locks.RequiredFeatures(), locks)
		if err != nil {
			return err
		}
	}

	if err := s.checkLocks(op.String(), locks); err != nil {
		return err
	}

	if s.state.Locks == locks {
		return nil
	}

	return s.setLocks(locks, data)
}

// Checks per lock state constraints.
func (s *session) checkLocks(op string, locks enums.Lock) error {
	if locks.Has(enums.LockAutoFocus) && !s.state.FocusMode.IsAutoFamily() {
		return newError(KindLockNotPossible, op, locks)
	}

	if locks.Has(enums.LockAutoExposure) && enums.ExposureModeAuto != s.state.ExposureMode {
		return newError(KindLockNotPossible, op, locks)
	}

	if locks.Has(enums.LockAutoWhiteBalance) && enums.WhiteBalanceModeAuto != s.state.WhiteBalanceMode {
		return newError(KindLockNotPossible, op, locks)
	}

	return nil
}

// Dispatches locks change.
func (s *session) setLocks(locks enums.Lock, data interface{}) error {
	err := s.dispatch(enums.OpSetLocks, locks, func(current *camera.State) error {
		return s.backend.(camera.ILocksSetter).SetLocks(current, locks, data)
	})
	if err != nil {
		return err
	}

	s.state.Locks = locks
	return nil
}

// Zoom returns current zoom and digital zoom flag.
func (m *Manager) Zoom() (float64, bool, error) {
	op := enums.OpSetZoom.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return 1, false, err
	}

	err = s.checkAnyFeature(op, KindZoomNotSupported, enums.FeatureOpticalZoom|enums.FeatureDigitalZoom)
	if err != nil {
		return 1, false, err
	}

	return s.state.Zoom, s.state.DigitalZoom, nil
}

// SetZoom changes zoom.
// Zoom above optical limit switches to digital zoom.
func (m *Manager) SetZoom(zoom float64, data interface{}) error {
	op := enums.OpSetZoom
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	err = s.checkAnyFeature(op.String(), KindZoomNotSupported, enums.FeatureOpticalZoom|enums.FeatureDigitalZoom)
	if err != nil {
		return err
	}

	maxOptical := s.caps.MaxOpticalZoom(s.state.MacroEnabled)
	maxValue := s.caps.MaxZoom(s.state.MacroEnabled)
	if zoom < 1 || zoom > maxValue {
		return newError(KindZoomOutOfRange, op.String(), zoom)
	}

	if s.state.Zoom == zoom {
		return nil
	}

	err = s.dispatch(op, zoom, func(current *camera.State) error {
		return s.backend.(camera.IZoomSetter).SetZoom(current, zoom, data)
	})
	if err != nil {
		return err
	}

	s.state.Zoom = zoom
	s.state.DigitalZoom = zoom > maxOptical
	return nil
}

// Audio returns current audio state.
func (m *Manager) Audio() (enums.Audio, error) {
	op := enums.OpSetAudio.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.AudioNone, err
	}

	if err := s.checkMode(op, enums.ModeVideo, nil); err != nil {
		return enums.AudioNone, err
	}

	if err := s.checkFeature(op, KindAudioNotSupported, enums.FeatureAudio, nil); err != nil {
		return enums.AudioNone, err
	}

	return s.state.Audio, nil
}

// SetAudio changes audio state.
func (m *Manager) SetAudio(audio enums.Audio, data interface{}) error {
	op := enums.OpSetAudio
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkMode(op.String(), enums.ModeVideo, audio); err != nil {
		return err
	}

	if err := s.checkFeature(op.String(), KindAudioNotSupported, enums.FeatureAudio, audio); err != nil {
		return err
	}

	if !s.caps.AudioStates.Contains(audio) {
		return newError(KindAudioNotSupported, op.String(), audio)
	}

	if s.state.Audio == audio {
		return nil
	}

	err = s.dispatch(op, audio, func(current *camera.State) error {
		return s.backend.(camera.IAudioSetter).SetAudio(current, audio, data)
	})
	if err != nil {
		return err
	}

	s.state.Audio = audio
	return nil
}

// PreviewMode returns current preview mode.
func (m *Manager) PreviewMode() (enums.PreviewMode, error) {
	op := enums.OpSetPreviewMode.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.PreviewModeNone, err
	}

	if err := s.checkFeature(op, KindPreviewNotSupported, enums.FeaturePreview, nil); err != nil {
		return enums.PreviewModeNone, err
	}

	return s.state.PreviewMode, nil
}

// SetPreviewMode changes preview mode.
func (m *Manager) SetPreviewMode(mode enums.PreviewMode, data interface{}) error {
	op := enums.OpSetPreviewMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkFeature(op.String(), KindPreviewNotSupported, enums.FeaturePreview, mode); err != nil {
		return err
	}

	if !s.caps.PreviewModes.Contains(mode) {
		return newError(KindPreviewNotSupported, op.String(), mode)
	}

	if s.state.PreviewMode == mode {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IPreviewSetter).SetPreviewMode(current, mode, data)
	})
	if err != nil {
		return err
	}

	s.state.PreviewMode = mode
	return nil
}
