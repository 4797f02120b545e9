// Package camera contains camera backend plugin definitions.
package camera

import (
	"reflect"

	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
)

// IBackend defines camera backend plugin interface.
// Every setting is realized through a separate optional interface,
// backend implements only what it actually supports.
type IBackend interface {
	Init(*InitDataBackend) error
	Unload()
	GetName() string
	Bus() bus.IMessageBus
	Stop() error
}

// InitDataBackend has data required for initializing a backend.
type InitDataBackend struct {
	Logger  common.ILoggerProvider
	Session string
}

// IInputCapsProvider is implemented by backends able to enumerate source formats.
type IInputCapsProvider interface {
	InputCaps() []*InputCaps
}

// IPhotography is implemented by backends advertising photography controls.
type IPhotography interface {
	Photography() *Capabilities
}

// IViewfinder is implemented by backends exposing a viewfinder surface.
type IViewfinder interface {
	ViewfinderSurface() interface{}
}

// Every setter receives a copy of the current configuration and
// opaque caller data.

// IModeSetter defines mode change operation.
type IModeSetter interface {
	SetMode(current *State, mode enums.Mode, data interface{}) error
}

// IFlashModeSetter defines flash mode change operation.
type IFlashModeSetter interface {
	SetFlashMode(current *State, mode enums.FlashMode, data interface{}) error
}

// IFocusModeSetter defines focus mode change operation.
type IFocusModeSetter interface {
	SetFocusMode(current *State, mode enums.FocusMode, macroEnabled bool, data interface{}) error
}

// IFocusRegionSetter defines focus region pattern change operation.
type IFocusRegionSetter interface {
	SetFocusRegionPattern(current *State, points enums.FocusPoints, activePoints uint64, data interface{}) error
}

// IExposureModeSetter defines exposure mode change operation.
type IExposureModeSetter interface {
	SetExposureMode(current *State, mode enums.ExposureMode, data interface{}) error
}

// IExposureCompSetter defines exposure compensation change operation.
type IExposureCompSetter interface {
	SetExposureComp(current *State, comp float64, data interface{}) error
}

// IIsoSetter defines ISO sensitivity change operation.
type IIsoSetter interface {
	SetIsoSensitivityMode(current *State, mode enums.IsoMode, level int, data interface{}) error
}

// IWhiteBalanceSetter defines white balance change operation.
type IWhiteBalanceSetter interface {
	SetWhiteBalanceMode(current *State, mode enums.WhiteBalanceMode, level int, data interface{}) error
}

// IMeteringSetter defines metering mode change operation.
type IMeteringSetter interface {
	SetMeteringMode(current *State, mode enums.MeteringMode, data interface{}) error
}

// IAspectRatioResolutionSetter defines picture format change operation.
type IAspectRatioResolutionSetter interface {
	SetAspectRatioResolution(current *State, ratio enums.AspectRatio, resolution enums.Resolution,
		data interface{}) error
}

// IQualitySetter defines quality change operation.
type IQualitySetter interface {
	SetQuality(current *State, quality enums.Quality, data interface{}) error
}

// ILocksSetter defines locks change operation.
type ILocksSetter interface {
	SetLocks(current *State, locks enums.Lock, data interface{}) error
}

// IZoomSetter defines zoom change operation.
type IZoomSetter interface {
	SetZoom(current *State, zoom float64, data interface{}) error
}

// IAudioSetter defines audio state change operation.
type IAudioSetter interface {
	SetAudio(current *State, audio enums.Audio, data interface{}) error
}

// IPreviewSetter defines preview mode change operation.
type IPreviewSetter interface {
	SetPreviewMode(current *State, mode enums.PreviewMode, data interface{}) error
}

// IStillCapturer defines still picture capture.
type IStillCapturer interface {
	CaptureStill(current *State, filename string, data interface{}) error
}

// IVideoRecorder defines video recording controls.
type IVideoRecorder interface {
	StartVideo(current *State, filename string, data interface{}) error
	PauseVideo(current *State, resume bool, data interface{}) error
	FinishVideo(current *State, data interface{}) error
}

// IBusHandler is a backend hook for ordinary bus messages.
// Returning true marks message as consumed.
type IBusHandler interface {
	HandleBusMessage(msg *bus.Message) bool
}

// ISyncBusHandler is a backend hook for synchronous bus messages.
// It's invoked on the posting goroutine. Returning true drops the message.
type ISyncBusHandler interface {
	HandleSyncBusMessage(msg *bus.Message) bool
}

// TypeBackend is a syntax sugar around IBackend type.
var TypeBackend = reflect.TypeOf((*IBackend)(nil)).Elem()
