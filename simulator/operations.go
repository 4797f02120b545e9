package simulator

import (
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// SetMode switches capture mode.
// First mode change brings pipeline to the playing state.
func (b *Backend) SetMode(current *camera.State, mode enums.Mode, data interface{}) error {
	b.apply(enums.OpSetMode, current, func(s *camera.State) { s.Mode = mode })

	b.Lock()
	defer b.Unlock()
	b.changeState(enums.PipelineStatePlaying)
	return nil
}

// SetFlashMode applies flash mode.
func (b *Backend) SetFlashMode(current *camera.State, mode enums.FlashMode, data interface{}) error {
	b.apply(enums.OpSetFlashMode, current, func(s *camera.State) { s.FlashMode = mode })
	return nil
}

// SetFocusMode applies focus mode and macro.
func (b *Backend) SetFocusMode(current *camera.State, mode enums.FocusMode, macroEnabled bool,
	data interface{}) error {
	b.apply(enums.OpSetFocusMode, current, func(s *camera.State) {
		s.FocusMode = mode
		s.MacroEnabled = macroEnabled
	})
	return nil
}

// SetFocusRegionPattern applies focus points.
func (b *Backend) SetFocusRegionPattern(current *camera.State, points enums.FocusPoints, activePoints uint64,
	data interface{}) error {
	b.apply(enums.OpSetFocusRegion, current, func(s *camera.State) {
		s.FocusPoints = points
		s.ActivePoints = activePoints
	})
	return nil
}

// SetExposureMode applies exposure mode.
// Night exposure reports shake risk.
func (b *Backend) SetExposureMode(current *camera.State, mode enums.ExposureMode, data interface{}) error {
	b.apply(enums.OpSetExposureMode, current, func(s *camera.State) { s.ExposureMode = mode })
	if enums.ExposureModeNight == mode {
		b.post(false, bus.NewShakeRiskMessage(""))
	}

	return nil
}

// SetExposureComp applies exposure compensation.
func (b *Backend) SetExposureComp(current *camera.State, comp float64, data interface{}) error {
	b.apply(enums.OpSetExposureComp, current, func(s *camera.State) { s.ExposureComp = comp })
	return nil
}

// SetIsoSensitivityMode applies ISO.
func (b *Backend) SetIsoSensitivityMode(current *camera.State, mode enums.IsoMode, level int,
	data interface{}) error {
	b.apply(enums.OpSetIsoMode, current, func(s *camera.State) {
		s.IsoMode = mode
		s.IsoLevel = level
	})
	return nil
}

// SetWhiteBalanceMode applies white balance.
func (b *Backend) SetWhiteBalanceMode(current *camera.State, mode enums.WhiteBalanceMode, level int,
	data interface{}) error {
	b.apply(enums.OpSetWhiteBalanceMode, current, func(s *camera.State) {
		s.WhiteBalanceMode = mode
		s.WhiteBalanceLevel = level
	})
	return nil
}

// SetMeteringMode applies metering.
func (b *Backend) SetMeteringMode(current *camera.State, mode enums.MeteringMode, data interface{}) error {
	b.apply(enums.OpSetMeteringMode, current, func(s *camera.State) { s.MeteringMode = mode })
	return nil
}

// SetAspectRatioResolution applies output format.
func (b *Backend) SetAspectRatioResolution(current *camera.State, ratio enums.AspectRatio,
	resolution enums.Resolution, data interface{}) error {
	b.apply(enums.OpSetAspectRatioResolution, current, func(s *camera.State) {
		s.AspectRatio = ratio
		s.Resolution = resolution
	})
	return nil
}

// SetQuality applies quality.
func (b *Backend) SetQuality(current *camera.State, quality enums.Quality, data interface{}) error {
	b.apply(enums.OpSetQuality, current, func(s *camera.State) { s.Quality = quality })
	return nil
}

// SetLocks applies locks.
// Newly locked autofocus reports focus result.
func (b *Backend) SetLocks(current *camera.State, locks enums.Lock, data interface{}) error {
	b.apply(enums.OpSetLocks, current, func(s *camera.State) { s.Locks = locks })
	if locks.Has(enums.LockAutoFocus) && !current.Locks.Has(enums.LockAutoFocus) {
		b.post(false, bus.NewFocusDoneMessage("", enums.FocusStatusSuccess))
	}

	return nil
}

// SetZoom applies zoom.
func (b *Backend) SetZoom(current *camera.State, zoom float64, data interface{}) error {
	b.apply(enums.OpSetZoom, current, func(s *camera.State) { s.Zoom = zoom })
	return nil
}

// SetAudio applies audio recording state.
func (b *Backend) SetAudio(current *camera.State, audio enums.Audio, data interface{}) error {
	b.apply(enums.OpSetAudio, current, func(s *camera.State) { s.Audio = audio })
	return nil
}

// SetPreviewMode applies preview mode.
func (b *Backend) SetPreviewMode(current *camera.State, mode enums.PreviewMode, data interface{}) error {
	b.apply(enums.OpSetPreviewMode, current, func(s *camera.State) { s.PreviewMode = mode })
	return nil
}
