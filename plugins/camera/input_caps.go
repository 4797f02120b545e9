package camera

import (
	"math"

	"github.com/go-home-io/camera/plugins/camera/enums"
)

const (
	// Allowed deviation while matching aspect ratio.
	ratioTolerance = 0.02
	// Upper pixel count bound of the low resolution class.
	lowResolutionPixels = 1000000
	// Upper pixel count bound of the medium resolution class.
	mediumResolutionPixels = 3000000
)

// InputCaps describes a single source format advertised by the backend.
type InputCaps struct {
	MediaType string
	Width     int
	Height    int
	FrameRate float64
}

// Format describes picture format reachable through the backend.
type Format struct {
	AspectRatio enums.AspectRatio `json:"aspectRatio"`
	Resolution  enums.Resolution  `json:"resolution"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
}

// AspectRatio classifies source dimensions.
func (c *InputCaps) AspectRatio() enums.AspectRatio {
	if c.Width <= 0 || c.Height <= 0 {
		return enums.AspectRatioNone
	}

	ratio := float64(c.Width) / float64(c.Height)
	switch {
	case math.Abs(ratio-4.0/3.0) < ratioTolerance:
		return enums.AspectRatio4x3
	case math.Abs(ratio-16.0/9.0) < ratioTolerance:
		return enums.AspectRatio16x9
	case math.Abs(ratio-3.0/2.0) < ratioTolerance:
		return enums.AspectRatio3x2
	}

	return enums.AspectRatioNone
}

// Resolution classifies source pixel count.
func (c *InputCaps) Resolution() enums.Resolution {
	pixels := c.Width * c.Height
	switch {
	case pixels <= 0:
		return enums.ResolutionNone
	case pixels < lowResolutionPixels:
		return enums.ResolutionLow
	case pixels < mediumResolutionPixels:
		return enums.ResolutionMedium
	}

	return enums.ResolutionHigh
}

// Format returns classified format or nil if dimensions are not recognized.
func (c *InputCaps) Format() *Format {
	ratio, res := c.AspectRatio(), c.Resolution()
	if enums.AspectRatioNone == ratio || enums.ResolutionNone == res {
		return nil
	}

	return &Format{AspectRatio: ratio, Resolution: res, Width: c.Width, Height: c.Height}
}
