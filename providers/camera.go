package providers

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// ICameraProvider defines camera configuration manager.
// Data argument is forwarded to the backend as is.
type ICameraProvider interface {
	Attach(backend camera.IBackend, override *camera.Capabilities) error
	Detach()
	Session() string
	Capabilities() (*camera.Capabilities, error)
	State() (*camera.State, error)
	IsCapturing() bool
	Viewfinder() (interface{}, error)
	SetPictureSavedHandler(handler func(filename string) bool)

	Mode() (enums.Mode, error)
	SetMode(mode enums.Mode, data interface{}) error
	FlashMode() (enums.FlashMode, error)
	SetFlashMode(mode enums.FlashMode, data interface{}) error
	FocusMode() (enums.FocusMode, bool, error)
	SetFocusMode(mode enums.FocusMode, macroEnabled bool, data interface{}) error
	FocusRegionPattern() (enums.FocusPoints, uint64, error)
	SetFocusRegionPattern(points enums.FocusPoints, activePoints uint64, data interface{}) error
	ExposureMode() (enums.ExposureMode, error)
	SetExposureMode(mode enums.ExposureMode, data interface{}) error
	ExposureComp() (float64, error)
	SetExposureComp(comp float64, data interface{}) error
	IsoSensitivityMode() (enums.IsoMode, int, error)
	SetIsoSensitivityMode(mode enums.IsoMode, level int, data interface{}) error
	WhiteBalanceMode() (enums.WhiteBalanceMode, int, error)
	SetWhiteBalanceMode(mode enums.WhiteBalanceMode, level int, data interface{}) error
	MeteringMode() (enums.MeteringMode, error)
	SetMeteringMode(mode enums.MeteringMode, data interface{}) error
	AspectRatio() (enums.AspectRatio, error)
	Resolution() (enums.Resolution, error)
	SetAspectRatioResolution(ratio enums.AspectRatio, resolution enums.Resolution, data interface{}) error
	Quality() (enums.Quality, error)
	SetQuality(quality enums.Quality, data interface{}) error
	Locks() (enums.Lock, error)
	SetLocks(locks enums.Lock, data interface{}) error
	Zoom() (float64, bool, error)
	SetZoom(zoom float64, data interface{}) error
	Audio() (enums.Audio, error)
	SetAudio(audio enums.Audio, data interface{}) error
	PreviewMode() (enums.PreviewMode, error)
	SetPreviewMode(mode enums.PreviewMode, data interface{}) error

	CaptureStill(filename string, data interface{}) error
	StartRecording(filename string, data interface{}) error
	PauseRecording(resume bool, data interface{}) error
	FinishRecording(data interface{}) error
}
