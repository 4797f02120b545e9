package camera

import (
	"testing"

	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/stretchr/testify/assert"
)

// Tests zoom limits.
func TestZoomLimits(t *testing.T) {
	c := &Capabilities{
		Features: enums.FeatureOpticalZoom | enums.FeatureDigitalZoom,
		Zoom:     ZoomLimits{Max: 8, MaxMacro: 1, MaxOptical: 4, MaxOpticalMacro: 2},
	}

	assert.Equal(t, 4.0, c.MaxOpticalZoom(false))
	assert.Equal(t, 2.0, c.MaxOpticalZoom(true))
	assert.Equal(t, 8.0, c.MaxZoom(false))
	assert.Equal(t, 2.0, c.MaxZoom(true))

	c.Features = enums.FeatureOpticalZoom
	assert.Equal(t, 4.0, c.MaxZoom(false))

	c.Features = enums.FeatureDigitalZoom
	assert.Equal(t, 1.0, c.MaxOpticalZoom(false))
	assert.Equal(t, 8.0, c.MaxZoom(false))

	c.Features = enums.FeatureNone
	assert.Equal(t, 1.0, c.MaxZoom(false))
}

// Tests supported values lookup.
func TestSupports(t *testing.T) {
	c := &Capabilities{
		Features:   enums.FeatureFlash,
		Modes:      enums.NewModeSet(enums.ModeStill),
		FlashModes: enums.NewFlashModeSet(enums.FlashModeOn),
		Operations: enums.NewOperationSet(enums.OpSetFlashMode),
	}

	assert.True(t, c.Supports(enums.ModeStill))
	assert.False(t, c.Supports(enums.ModeVideo))
	assert.True(t, c.Supports(enums.FlashModeOn))
	assert.False(t, c.Supports(enums.FlashModeAuto))
	assert.True(t, c.Supports(enums.OpSetFlashMode))
	assert.True(t, c.Supports(enums.FeatureFlash))
	assert.False(t, c.Supports(enums.QualityHigh))
	assert.False(t, c.Supports("flash"))
}

// Tests formats and copy independence.
func TestFormatsCopy(t *testing.T) {
	c := &Capabilities{}
	assert.True(t, c.SupportsFormat(enums.AspectRatio4x3, enums.ResolutionHigh))

	c.Formats = []*Format{{AspectRatio: enums.AspectRatio4x3, Resolution: enums.ResolutionLow}}
	assert.True(t, c.SupportsFormat(enums.AspectRatio4x3, enums.ResolutionLow))
	assert.False(t, c.SupportsFormat(enums.AspectRatio4x3, enums.ResolutionHigh))

	cp := c.Copy()
	cp.Formats[0].Resolution = enums.ResolutionHigh
	assert.Equal(t, enums.ResolutionLow, c.Formats[0].Resolution)
}

// Tests ranges.
func TestRanges(t *testing.T) {
	r := Range{Min: -1.5, Max: 1.5}
	assert.True(t, r.Contains(-1.5))
	assert.True(t, r.Contains(1.5))
	assert.False(t, r.Contains(1.6))

	ir := IntRange{Min: 100, Max: 800}
	assert.True(t, ir.Contains(400))
	assert.False(t, ir.Contains(99))
}

// Tests source formats classification.
func TestInputCapsClassification(t *testing.T) {
	data := []struct {
		in    *InputCaps
		ratio enums.AspectRatio
		res   enums.Resolution
	}{
		{&InputCaps{Width: 640, Height: 480}, enums.AspectRatio4x3, enums.ResolutionLow},
		{&InputCaps{Width: 1280, Height: 720}, enums.AspectRatio16x9, enums.ResolutionLow},
		{&InputCaps{Width: 1920, Height: 1080}, enums.AspectRatio16x9, enums.ResolutionMedium},
		{&InputCaps{Width: 4608, Height: 3456}, enums.AspectRatio4x3, enums.ResolutionHigh},
		{&InputCaps{Width: 1440, Height: 960}, enums.AspectRatio3x2, enums.ResolutionMedium},
		{&InputCaps{Width: 1000, Height: 1000}, enums.AspectRatioNone, enums.ResolutionMedium},
		{&InputCaps{}, enums.AspectRatioNone, enums.ResolutionNone},
	}

	for _, v := range data {
		assert.Equal(t, v.ratio, v.in.AspectRatio(), "%dx%d", v.in.Width, v.in.Height)
		assert.Equal(t, v.res, v.in.Resolution(), "%dx%d", v.in.Width, v.in.Height)
	}

	assert.Nil(t, (&InputCaps{Width: 1000, Height: 1000}).Format())
	f := (&InputCaps{Width: 640, Height: 480}).Format()
	assert.Equal(t, 640, f.Width)
}

// Tests state defaults and reset.
func TestState(t *testing.T) {
	s := NewState()
	assert.Equal(t, 1.0, s.Zoom)
	assert.Equal(t, enums.ModeNone, s.Mode)

	s.IsoMode = enums.IsoModeManual
	s.IsoLevel = 400
	s.ExposureComp = 1
	s.FlashMode = enums.FlashModeOn
	s.Quality = enums.QualityHigh
	s.Zoom = 3

	cp := s.Copy()
	s.ResetModeDependent()

	assert.Equal(t, enums.IsoModeAuto, s.IsoMode)
	assert.Equal(t, 0, s.IsoLevel)
	assert.Equal(t, 0.0, s.ExposureComp)
	assert.Equal(t, enums.FlashModeNone, s.FlashMode)
	assert.Equal(t, enums.QualityHigh, s.Quality)
	assert.Equal(t, 3.0, s.Zoom)
	assert.Equal(t, 400, cp.IsoLevel)
}
