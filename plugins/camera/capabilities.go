package camera

import (
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// Range describes inclusive float limits.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains checks whether value is within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// IntRange describes inclusive integer limits.
type IntRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains checks whether value is within the range.
func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// ZoomLimits describes zoom boundaries.
// Zero values are treated as 1, i.e. no zoom.
type ZoomLimits struct {
	Max             float64 `json:"max" yaml:"max"`
	MaxMacro        float64 `json:"maxMacro" yaml:"maxMacro"`
	MaxOptical      float64 `json:"maxOptical" yaml:"maxOptical"`
	MaxOpticalMacro float64 `json:"maxOpticalMacro" yaml:"maxOpticalMacro"`
}

// Capabilities describes everything the attached backend supports.
// Immutable for the lifetime of the backend session.
type Capabilities struct {
	Features           enums.Feature
	Modes              enums.ModeSet
	FlashModes         enums.FlashModeSet
	FocusModes         enums.FocusModeSet
	FocusPoints        enums.FocusPointsSet
	ExposureModes      enums.ExposureModeSet
	ExposureComp       Range
	IsoModes           enums.IsoModeSet
	IsoLevels          IntRange
	WhiteBalanceModes  enums.WhiteBalanceModeSet
	WhiteBalanceLevels IntRange
	MeteringModes      enums.MeteringModeSet
	AspectRatios       enums.AspectRatioSet
	Resolutions        enums.ResolutionSet
	Qualities          enums.QualitySet
	AudioStates        enums.AudioSet
	PreviewModes       enums.PreviewModeSet
	Zoom               ZoomLimits
	Formats            []*Format
	Operations         enums.OperationSet
}

// HasFeature checks whether all requested features are supported.
func (c *Capabilities) HasFeature(flags enums.Feature) bool {
	return c.Features.Has(flags)
}

// HasOperation checks whether backend implements requested operation.
func (c *Capabilities) HasOperation(op enums.Operation) bool {
	return c.Operations.Contains(op)
}

// MaxOpticalZoom returns maximum optical-only zoom.
func (c *Capabilities) MaxOpticalZoom(macroEnabled bool) float64 {
	if !c.Features.HasAny(enums.FeatureOpticalZoom) {
		return 1
	}

	if macroEnabled {
		return atLeastOne(c.Zoom.MaxOpticalMacro)
	}

	return atLeastOne(c.Zoom.MaxOptical)
}

// MaxZoom returns maximum allowed zoom value, digital zoom included if supported.
func (c *Capabilities) MaxZoom(macroEnabled bool) float64 {
	if !c.Features.HasAny(enums.FeatureDigitalZoom) {
		return c.MaxOpticalZoom(macroEnabled)
	}

	max := c.Zoom.Max
	if macroEnabled {
		max = c.Zoom.MaxMacro
	}

	optical := c.MaxOpticalZoom(macroEnabled)
	if max < optical {
		return optical
	}

	return max
}

// SupportsFormat checks whether aspect ratio and resolution could be combined.
// Without discovered formats every combination is allowed.
func (c *Capabilities) SupportsFormat(ratio enums.AspectRatio, resolution enums.Resolution) bool {
	if 0 == len(c.Formats) {
		return true
	}

	for _, v := range c.Formats {
		if v.AspectRatio == ratio && v.Resolution == resolution {
			return true
		}
	}

	return false
}

// Supports checks whether value belongs to the supported set of its setting.
// Setting is determined by the value type.
func (c *Capabilities) Supports(value interface{}) bool {
	switch v := value.(type) {
	case enums.Mode:
		return c.Modes.Contains(v)
	case enums.FlashMode:
		return c.FlashModes.Contains(v)
	case enums.FocusMode:
		return c.FocusModes.Contains(v)
	case enums.FocusPoints:
		return c.FocusPoints.Contains(v)
	case enums.ExposureMode:
		return c.ExposureModes.Contains(v)
	case enums.IsoMode:
		return c.IsoModes.Contains(v)
	case enums.WhiteBalanceMode:
		return c.WhiteBalanceModes.Contains(v)
	case enums.MeteringMode:
		return c.MeteringModes.Contains(v)
	case enums.AspectRatio:
		return c.AspectRatios.Contains(v)
	case enums.Resolution:
		return c.Resolutions.Contains(v)
	case enums.Quality:
		return c.Qualities.Contains(v)
	case enums.Audio:
		return c.AudioStates.Contains(v)
	case enums.PreviewMode:
		return c.PreviewModes.Contains(v)
	case enums.Operation:
		return c.Operations.Contains(v)
	case enums.Feature:
		return c.Features.Has(v)
	}

	return false
}

// Copy performs deep copy of the capabilities.
func (c *Capabilities) Copy() *Capabilities {
	cp := *c
	cp.Formats = make([]*Format, len(c.Formats))
	for ii, v := range c.Formats {
		f := *v
		cp.Formats[ii] = &f
	}

	return &cp
}

// Zero zoom limit means no zoom at all.
func atLeastOne(v float64) float64 {
	if v < 1 {
		return 1
	}

	return v
}
