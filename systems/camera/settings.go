package camera

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// Mode returns current mode.
func (m *Manager) Mode() (enums.Mode, error) {
	m.Lock()
	defer m.Unlock()

	s, err := m.current(enums.OpSetMode.String())
	if err != nil {
		return enums.ModeNone, err
	}

	return s.state.Mode, nil
}

// SetMode switches camera mode.
// Settings which are not portable across modes are reset.
func (m *Manager) SetMode(mode enums.Mode, data interface{}) error {
	op := enums.OpSetMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if !s.caps.Modes.Contains(mode) {
		return newError(KindModeNotSupported, op.String(), mode)
	}

	if s.state.Mode == mode {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IModeSetter).SetMode(current, mode, data)
	})
	if err != nil {
		return err
	}

	s.state.Mode = mode
	s.state.ResetModeDependent()
	return nil
}

// FlashMode returns current flash mode.
func (m *Manager) FlashMode() (enums.FlashMode, error) {
	op := enums.OpSetFlashMode.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.FlashModeNone, err
	}

	if err := s.checkMode(op, enums.ModeStill, nil); err != nil {
		return enums.FlashModeNone, err
	}

	if err := s.checkFeature(op, KindFlashModeNotSupported, enums.FeatureFlash, nil); err != nil {
		return enums.FlashModeNone, err
	}

	return s.state.FlashMode, nil
}

// SetFlashMode changes flash mode.
func (m *Manager) SetFlashMode(mode enums.FlashMode, data interface{}) error {
	op := enums.OpSetFlashMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkMode(op.String(), enums.ModeStill, mode); err != nil {
		return err
	}

	if err := s.checkFeature(op.String(), KindFlashModeNotSupported, enums.FeatureFlash, mode); err != nil {
		return err
	}

	if !s.caps.FlashModes.Contains(mode) {
		return newError(KindFlashModeNotSupported, op.String(), mode)
	}

	if s.state.FlashMode == mode {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IFlashModeSetter).SetFlashMode(current, mode, data)
	})
	if err != nil {
		return err
	}

	s.state.FlashMode = mode
	return nil
}

// FocusMode returns current focus mode and macro flag.
func (m *Manager) FocusMode() (enums.FocusMode, bool, error) {
	op := enums.OpSetFocusMode.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.FocusModeNone, false, err
	}

	if err := s.checkMode(op, enums.ModeStill, nil); err != nil {
		return enums.FocusModeNone, false, err
	}

	err = s.checkAnyFeature(op, KindFocusModeNotSupported, enums.FeatureManualFocus|enums.FeatureAutoFocus)
	if err != nil {
		return enums.FocusModeNone, false, err
	}

	return s.state.FocusMode, s.state.MacroEnabled, nil
}

// SetFocusMode changes focus mode and macro flag.
func (m *Manager) SetFocusMode(mode enums.FocusMode, macroEnabled bool, data interface{}) error {
	op := enums.OpSetFocusMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkMode(op.String(), enums.ModeStill, mode); err != nil {
		return err
	}

	required := mode.RequiredFeatures()
	if macroEnabled {
		required |= enums.FeatureMacro
	}

	if err := s.checkFeature(op.String(), KindFocusModeNotSupported, required, mode); err != nil {
		return err
	}

	if !s.caps.FocusModes.Contains(mode) {
		return newError(KindFocusModeNotSupported, op.String(), mode)
	}

	if s.state.Locks.Has(enums.LockAutoFocus) {
		return newError(KindAutofocusLocked, op.String(), mode)
	}

	if macroEnabled && s.state.Zoom > s.caps.MaxZoom(true) {
		return newError(KindInvalidFocusMode, op.String(), mode)
	}

	if s.state.FocusMode == mode && s.state.MacroEnabled == macroEnabled {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IFocusModeSetter).SetFocusMode(current, mode, macroEnabled, data)
	})
	if err != nil {
		return err
	}

	s.state.FocusMode = mode
	s.state.MacroEnabled = macroEnabled
	s.state.DigitalZoom = s.state.Zoom > s.caps.MaxOpticalZoom(macroEnabled)
	return nil
}

// FocusRegionPattern returns current focus points layout and active points mask.
func (m *Manager) FocusRegionPattern() (enums.FocusPoints, uint64, error) {
	op := enums.OpSetFocusRegion.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.FocusPointsNone, 0, err
	}

	if err := s.checkMode(op, enums.ModeStill, nil); err != nil {
		return enums.FocusPointsNone, 0, err
	}

	if err := s.checkFeature(op, KindFocusModeNotSupported, enums.FeatureAutoFocus, nil); err != nil {
		return enums.FocusPointsNone, 0, err
	}

	return s.state.FocusPoints, s.state.ActivePoints, nil
}

// SetFocusRegionPattern changes focus points layout.
// Active points mask has to be a subset of the layout points.
func (m *Manager) SetFocusRegionPattern(points enums.FocusPoints, activePoints uint64, data interface{}) error {
	op := enums.OpSetFocusRegion
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkMode(op.String(), enums.ModeStill, points); err != nil {
		return err
	}

	if err := s.checkFeature(op.String(), KindFocusModeNotSupported, enums.FeatureAutoFocus, points); err != nil {
		return err
	}

	if !s.caps.FocusPoints.Contains(points) || 0 != activePoints&^points.AllPoints() {
		return newError(KindFocusModeNotSupported, op.String(), points)
	}

	if !s.state.FocusMode.IsAutoFamily() {
		return newError(KindInvalidFocusMode, op.String(), points)
	}

	if s.state.Locks.Has(enums.LockAutoFocus) {
		return newError(KindAutofocusLocked, op.String(), points)
	}

	if s.state.FocusPoints == points && s.state.ActivePoints == activePoints {
		return nil
	}

	err = s.dispatch(op, points, func(current *camera.State) error {
		return s.backend.(camera.IFocusRegionSetter).SetFocusRegionPattern(current, points, activePoints, data)
	})
	if err != nil {
		return err
	}

	s.state.FocusPoints = points
	s.state.ActivePoints = activePoints
	return nil
}

// ExposureMode returns current exposure mode.
func (m *Manager) ExposureMode() (enums.ExposureMode, error) {
	op := enums.OpSetExposureMode.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.ExposureModeNone, err
	}

	err = s.checkAnyFeature(op, KindExposureModeNotSupported,
		enums.FeatureManualExposure|enums.FeatureAutoExposure)
	if err != nil {
		return enums.ExposureModeNone, err
	}

	return s.state.ExposureMode, nil
}

// SetExposureMode changes exposure mode.
// Exposure can't leave auto mode while it's locked.
func (m *Manager) SetExposureMode(mode enums.ExposureMode, data interface{}) error {
	op := enums.OpSetExposureMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	err = s.checkFeature(op.String(), KindExposureModeNotSupported, mode.RequiredFeatures(), mode)
	if err != nil {
		return err
	}

	if !s.caps.ExposureModes.Contains(mode) {
		return newError(KindExposureModeNotSupported, op.String(), mode)
	}

	if s.state.Locks.Has(enums.LockAutoExposure) && enums.ExposureModeAuto != mode {
		return newError(KindLockNotPossible, op.String(), mode)
	}

	if s.state.ExposureMode == mode {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IExposureModeSetter).SetExposureMode(current, mode, data)
	})
	if err != nil {
		return err
	}

	s.state.ExposureMode = mode
	return nil
}

// ExposureComp returns current exposure compensation.
func (m *Manager) ExposureComp() (float64, error) {
	op := enums.OpSetExposureComp.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return 0, err
	}

	err = s.checkAnyFeature(op, KindExposureModeNotSupported,
		enums.FeatureManualExposure|enums.FeatureAutoExposure)
	if err != nil {
		return 0, err
	}

	return s.state.ExposureComp, nil
}

// SetExposureComp changes exposure compensation.
func (m *Manager) SetExposureComp(comp float64, data interface{}) error {
	op := enums.OpSetExposureComp
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	err = s.checkAnyFeature(op.String(), KindExposureModeNotSupported,
		enums.FeatureManualExposure|enums.FeatureAutoExposure)
	if err != nil {
		return err
	}

	if !s.caps.ExposureComp.Contains(comp) {
		return newError(KindExposureModeNotSupported, op.String(), comp)
	}

	if s.state.ExposureComp == comp {
		return nil
	}

	err = s.dispatch(op, comp, func(current *camera.State) error {
		return s.backend.(camera.IExposureCompSetter).SetExposureComp(current, comp, data)
	})
	if err != nil {
		return err
	}

	s.state.ExposureComp = comp
	return nil
}
