package camera

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// IsoSensitivityMode returns current ISO mode and level.
func (m *Manager) IsoSensitivityMode() (enums.IsoMode, int, error) {
	op := enums.OpSetIsoMode.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.IsoModeNone, 0, err
	}

	err = s.checkAnyFeature(op, KindIsoSensitivityModeNotSupported, enums.FeatureManualIso|enums.FeatureAutoIso)
	if err != nil {
		return enums.IsoModeNone, 0, err
	}

	return s.state.IsoMode, s.state.IsoLevel, nil
}

// SetIsoSensitivityMode changes ISO mode.
// Level is validated only for the manual mode.
func (m *Manager) SetIsoSensitivityMode(mode enums.IsoMode, level int, data interface{}) error {
	op := enums.OpSetIsoMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	err = s.checkFeature(op.String(), KindIsoSensitivityModeNotSupported, mode.RequiredFeatures(), mode)
	if err != nil {
		return err
	}

	if !s.caps.IsoModes.Contains(mode) {
		return newError(KindIsoSensitivityModeNotSupported, op.String(), mode)
	}

	if enums.IsoModeManual == mode && !s.caps.IsoLevels.Contains(level) {
		return newError(KindIsoSensitivityModeNotSupported, op.String(), level)
	}

	if s.state.IsoMode == mode && s.state.IsoLevel == level {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IIsoSetter).SetIsoSensitivityMode(current, mode, level, data)
	})
	if err != nil {
		return err
	}

	s.state.IsoMode = mode
	s.state.IsoLevel = level
	return nil
}

// WhiteBalanceMode returns current white balance mode and level.
func (m *Manager) WhiteBalanceMode() (enums.WhiteBalanceMode, int, error) {
	op := enums.OpSetWhiteBalanceMode.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.WhiteBalanceModeNone, 0, err
	}

	err = s.checkAnyFeature(op, KindWhiteBalanceModeNotSupported,
		enums.FeatureManualWhiteBalance|enums.FeatureAutoWhiteBalance)
	if err != nil {
		return enums.WhiteBalanceModeNone, 0, err
	}

	return s.state.WhiteBalanceMode, s.state.WhiteBalanceLevel, nil
}

// SetWhiteBalanceMode changes white balance mode.
// White balance can't leave auto mode while it's locked.
func (m *Manager) SetWhiteBalanceMode(mode enums.WhiteBalanceMode, level int, data interface{}) error {
	op := enums.OpSetWhiteBalanceMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	err = s.checkFeature(op.String(), KindWhiteBalanceModeNotSupported, mode.RequiredFeatures(), mode)
	if err != nil {
		return err
	}

	if !s.caps.WhiteBalanceModes.Contains(mode) {
		return newError(KindWhiteBalanceModeNotSupported, op.String(), mode)
	}

	if enums.WhiteBalanceModeManual == mode && !s.caps.WhiteBalanceLevels.Contains(level) {
		return newError(KindWhiteBalanceModeNotSupported, op.String(), level)
	}

	if s.state.Locks.Has(enums.LockAutoWhiteBalance) && enums.WhiteBalanceModeAuto != mode {
		return newError(KindLockNotPossible, op.String(), mode)
	}

	if s.state.WhiteBalanceMode == mode && s.state.WhiteBalanceLevel == level {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IWhiteBalanceSetter).SetWhiteBalanceMode(current, mode, level, data)
	})
	if err != nil {
		return err
	}

	s.state.WhiteBalanceMode = mode
	s.state.WhiteBalanceLevel = level
	return nil
}

// MeteringMode returns current metering mode.
func (m *Manager) MeteringMode() (enums.MeteringMode, error) {
	op := enums.OpSetMeteringMode.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.MeteringModeNone, err
	}

	if err := s.checkFeature(op, KindMeteringModeNotSupported, enums.FeatureMetering, nil); err != nil {
		return enums.MeteringModeNone, err
	}

	return s.state.MeteringMode, nil
}

// SetMeteringMode changes metering mode.
func (m *Manager) SetMeteringMode(mode enums.MeteringMode, data interface{}) error {
	op := enums.OpSetMeteringMode
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkFeature(op.String(), KindMeteringModeNotSupported, enums.FeatureMetering, mode); err != nil {
		return err
	}

	if !s.caps.MeteringModes.Contains(mode) {
		return newError(KindMeteringModeNotSupported, op.String(), mode)
	}

	if s.state.MeteringMode == mode {
		return nil
	}

	err = s.dispatch(op, mode, func(current *camera.State) error {
		return s.backend.(camera.IMeteringSetter).SetMeteringMode(current, mode, data)
	})
	if err != nil {
		return err
	}

	s.state.MeteringMode = mode
	return nil
}

// AspectRatio returns current aspect ratio.
func (m *Manager) AspectRatio() (enums.AspectRatio, error) {
	op := enums.OpSetAspectRatioResolution.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.AspectRatioNone, err
	}

	if err := s.checkFeature(op, KindAspectRatioNotSupported, enums.FeatureAspectRatio, nil); err != nil {
		return enums.AspectRatioNone, err
	}

	return s.state.AspectRatio, nil
}

// Resolution returns current resolution.
func (m *Manager) Resolution() (enums.Resolution, error) {
	op := enums.OpSetAspectRatioResolution.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.ResolutionNone, err
	}

	if err := s.checkFeature(op, KindResolutionNotSupported, enums.FeatureResolution, nil); err != nil {
		return enums.ResolutionNone, err
	}

	return s.state.Resolution, nil
}

// SetAspectRatioResolution changes picture format.
// The pair has to be reachable through advertised formats, if any.
func (m *Manager) SetAspectRatioResolution(ratio enums.AspectRatio, resolution enums.Resolution,
	data interface{}) error {
	op := enums.OpSetAspectRatioResolution
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	err = s.checkFeature(op.String(), KindAspectRatioNotSupported, enums.FeatureAspectRatio, ratio)
	if err != nil {
		return err
	}

	err = s.checkFeature(op.String(), KindResolutionNotSupported, enums.FeatureResolution, resolution)
	if err != nil {
		return err
	}

	if !s.caps.AspectRatios.Contains(ratio) {
		return newError(KindAspectRatioNotSupported, op.String(), ratio)
	}

	if !s.caps.Resolutions.Contains(resolution) || !s.caps.SupportsFormat(ratio, resolution) {
		return newError(KindResolutionNotSupported, op.String(), resolution)
	}

	if s.state.AspectRatio == ratio && s.state.Resolution == resolution {
		return nil
	}

	err = s.dispatch(op, ratio.String()+"/"+resolution.String(), func(current *camera.State) error {
		return s.backend.(camera.IAspectRatioResolutionSetter).SetAspectRatioResolution(current,
			ratio, resolution, data)
	})
	if err != nil {
		return err
	}

	s.state.AspectRatio = ratio
	s.state.Resolution = resolution
	return nil
}

// Quality returns current quality.
func (m *Manager) Quality() (enums.Quality, error) {
	op := enums.OpSetQuality.String()
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op)
	if err != nil {
		return enums.QualityNone, err
	}

	if err := s.checkFeature(op, KindQualityNotSupported, enums.FeatureQuality, nil); err != nil {
		return enums.QualityNone, err
	}

	return s.state.Quality, nil
}

// SetQuality changes quality.
func (m *Manager) SetQuality(quality enums.Quality, data interface{}) error {
	op := enums.OpSetQuality
	m.Lock()
	defer m.Unlock()

	s, err := m.current(op.String())
	if err != nil {
		return err
	}

	if err := s.checkFeature(op.String(), KindQualityNotSupported, enums.FeatureQuality, quality); err != nil {
		return err
	}

	if !s.caps.Qualities.Contains(quality) {
		return newError(KindQualityNotSupported, op.String(), quality)
	}

	if s.state.Quality == quality {
		return nil
	}

	err = s.dispatch(op, quality, func(current *camera.State) error {
		return s.backend.(camera.IQualitySetter).SetQuality(current, quality, data)
	})
	if err != nil {
		return err
	}

	s.state.Quality = quality
	return nil
}
