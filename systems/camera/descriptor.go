package camera

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// Operations required to realize a feature.
// Features without an operation are not resolvable during discovery.
var featureOperations = map[enums.Feature]enums.Operation{
	enums.FeatureFlash:               enums.OpSetFlashMode,
	enums.FeatureManualFocus:         enums.OpSetFocusMode,
	enums.FeatureAutoFocus:           enums.OpSetFocusMode,
	enums.FeatureMacro:               enums.OpSetFocusMode,
	enums.FeatureContinuousAutofocus: enums.OpSetFocusMode,
	enums.FeatureManualExposure:      enums.OpSetExposureMode,
	enums.FeatureAutoExposure:        enums.OpSetExposureMode,
	enums.FeatureManualIso:           enums.OpSetIsoMode,
	enums.FeatureAutoIso:             enums.OpSetIsoMode,
	enums.FeatureManualWhiteBalance:  enums.OpSetWhiteBalanceMode,
	enums.FeatureAutoWhiteBalance:    enums.OpSetWhiteBalanceMode,
	enums.FeatureMetering:            enums.OpSetMeteringMode,
	enums.FeatureAspectRatio:         enums.OpSetAspectRatioResolution,
	enums.FeatureResolution:          enums.OpSetAspectRatioResolution,
	enums.FeatureQuality:             enums.OpSetQuality,
	enums.FeatureOpticalZoom:         enums.OpSetZoom,
	enums.FeatureDigitalZoom:         enums.OpSetZoom,
	enums.FeatureAudio:               enums.OpSetAudio,
	enums.FeaturePreview:             enums.OpSetPreviewMode,
}

// Builds capabilities descriptor for the backend.
// Explicit override is copied as is, only operations and missing
// formats and modes are taken from the backend.
func newDescriptor(backend camera.IBackend, override *camera.Capabilities) (*camera.Capabilities, error) {
	var caps *camera.Capabilities
	if nil != override {
		caps = override.Copy()
	} else {
		caps = discover(backend)
	}

	caps.Operations = operations(backend)
	if 0 == caps.Modes {
		caps.Modes = captureModes(backend)
	}

	if 0 == len(caps.Formats) {
		if p, ok := backend.(camera.IInputCapsProvider); ok {
			applyInputCaps(caps, p.InputCaps(), nil == override)
		}
	}

	if 0 == caps.Modes && enums.FeatureNone == caps.Features {
		return nil, &ErrNoCapabilities{}
	}

	return caps, nil
}

// Inspects backend interfaces.
func discover(backend camera.IBackend) *camera.Capabilities {
	caps := &camera.Capabilities{}
	if p, ok := backend.(camera.IPhotography); ok {
		if advertised := p.Photography(); nil != advertised {
			caps = advertised.Copy()
		}
	}

	if _, ok := backend.(camera.IViewfinder); ok {
		caps.Features |= enums.FeatureViewfinder
	} else {
		caps.Features &^= enums.FeatureViewfinder
	}

	modes := captureModes(backend)
	if 0 == caps.Modes {
		caps.Modes = modes
	} else {
		caps.Modes &= modes
	}

	ops := operations(backend)
	for feature, op := range featureOperations {
		if !ops.Contains(op) {
			caps.Features &^= feature
		}
	}

	return caps
}

// Returns modes backend is able to capture in.
func captureModes(backend camera.IBackend) enums.ModeSet {
	var modes enums.ModeSet
	if _, ok := backend.(camera.IStillCapturer); ok {
		modes |= enums.NewModeSet(enums.ModeStill)
	}

	if _, ok := backend.(camera.IVideoRecorder); ok {
		modes |= enums.NewModeSet(enums.ModeVideo)
	}

	return modes
}

// Classifies advertised source formats.
func applyInputCaps(caps *camera.Capabilities, inputs []*camera.InputCaps, enableFeatures bool) {
	for _, v := range inputs {
		if nil == v {
			continue
		}

		f := v.Format()
		if nil == f || hasFormat(caps, f) {
			continue
		}

		caps.Formats = append(caps.Formats, f)
		caps.AspectRatios |= enums.NewAspectRatioSet(f.AspectRatio)
		caps.Resolutions |= enums.NewResolutionSet(f.Resolution)
	}

	if enableFeatures && 0 != len(caps.Formats) && caps.Operations.Contains(enums.OpSetAspectRatioResolution) {
		caps.Features |= enums.FeatureAspectRatio | enums.FeatureResolution
	}
}

// Checks whether format class is already known.
func hasFormat(caps *camera.Capabilities, f *camera.Format) bool {
	for _, v := range caps.Formats {
		if v.AspectRatio == f.AspectRatio && v.Resolution == f.Resolution {
			return true
		}
	}

	return false
}

// Collects operations implemented by the backend.
func operations(backend camera.IBackend) enums.OperationSet {
	ops := make([]enums.Operation, 0)
	add := func(ok bool, op ...enums.Operation) {
		if ok {
			ops = append(ops, op...)
		}
	}

	_, ok := backend.(camera.IModeSetter)
	add(ok, enums.OpSetMode)
	_, ok = backend.(camera.IFlashModeSetter)
	add(ok, enums.OpSetFlashMode)
	_, ok = backend.(camera.IFocusModeSetter)
	add(ok, enums.OpSetFocusMode)
	_, ok = backend.(camera.IFocusRegionSetter)
	add(ok, enums.OpSetFocusRegion)
	_, ok = backend.(camera.IExposureModeSetter)
	add(ok, enums.OpSetExposureMode)
	_, ok = backend.(camera.IExposureCompSetter)
	add(ok, enums.OpSetExposureComp)
	_, ok = backend.(camera.IIsoSetter)
	add(ok, enums.OpSetIsoMode)
	_, ok = backend.(camera.IWhiteBalanceSetter)
	add(ok, enums.OpSetWhiteBalanceMode)
	_, ok = backend.(camera.IMeteringSetter)
	add(ok, enums.OpSetMeteringMode)
	_, ok = backend.(camera.IAspectRatioResolutionSetter)
	add(ok, enums.OpSetAspectRatioResolution)
	_, ok = backend.(camera.IQualitySetter)
	add(ok, enums.OpSetQuality)
	_, ok = backend.(camera.ILocksSetter)
	add(ok, enums.OpSetLocks)
	_, ok = backend.(camera.IZoomSetter)
	add(ok, enums.OpSetZoom)
	_, ok = backend.(camera.IAudioSetter)
	add(ok, enums.OpSetAudio)
	_, ok = backend.(camera.IPreviewSetter)
	add(ok, enums.OpSetPreviewMode)
	_, ok = backend.(camera.IStillCapturer)
	add(ok, enums.OpCaptureStill)
	_, ok = backend.(camera.IVideoRecorder)
	add(ok, enums.OpStartVideo, enums.OpPauseVideo, enums.OpFinishVideo)
	_, ok = backend.(camera.IBusHandler)
	add(ok, enums.OpHandleBusMessage)
	_, ok = backend.(camera.ISyncBusHandler)
	add(ok, enums.OpHandleSyncBusMessage)

	return enums.NewOperationSet(ops...)
}
