package camera

import (
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// State contains current camera configuration.
type State struct {
	Mode              enums.Mode             `json:"mode"`
	FlashMode         enums.FlashMode        `json:"flashMode"`
	FocusMode         enums.FocusMode        `json:"focusMode"`
	MacroEnabled      bool                   `json:"macroEnabled"`
	FocusPoints       enums.FocusPoints      `json:"focusPoints"`
	ActivePoints      uint64                 `json:"activePoints"`
	ExposureMode      enums.ExposureMode     `json:"exposureMode"`
	ExposureComp      float64                `json:"exposureComp"`
	IsoMode           enums.IsoMode          `json:"isoMode"`
	IsoLevel          int                    `json:"isoLevel"`
	WhiteBalanceMode  enums.WhiteBalanceMode `json:"whiteBalanceMode"`
	WhiteBalanceLevel int                    `json:"whiteBalanceLevel"`
	MeteringMode      enums.MeteringMode     `json:"meteringMode"`
	AspectRatio       enums.AspectRatio      `json:"aspectRatio"`
	Resolution        enums.Resolution       `json:"resolution"`
	Quality           enums.Quality          `json:"quality"`
	Locks             enums.Lock             `json:"locks"`
	Zoom              float64                `json:"zoom"`
	DigitalZoom       bool                   `json:"digitalZoom"`
	Audio             enums.Audio            `json:"audio"`
	PreviewMode       enums.PreviewMode      `json:"previewMode"`
}

// NewState constructs unset configuration.
func NewState() *State {
	return &State{Zoom: 1}
}

// Copy returns independent copy of the configuration.
func (s *State) Copy() *State {
	cp := *s
	return &cp
}

// ResetModeDependent resets settings which are not portable across mode switch.
func (s *State) ResetModeDependent() {
	s.IsoMode = enums.IsoModeAuto
	s.IsoLevel = 0
	s.WhiteBalanceMode = enums.WhiteBalanceModeAuto
	s.WhiteBalanceLevel = 0
	s.ExposureComp = 0
	s.FlashMode = enums.FlashModeNone
	s.AspectRatio = enums.AspectRatioNone
	s.Resolution = enums.ResolutionNone
}
