package settings

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/providers"
	"github.com/pkg/errors"
)

// Converts capabilities, as they are written in config, into descriptor.
func parseCapabilities(raw *providers.CapabilitiesSettings) (*camera.Capabilities, error) {
	caps := &camera.Capabilities{
		ExposureComp:       raw.ExposureComp,
		IsoLevels:          raw.IsoLevels,
		WhiteBalanceLevels: raw.WhiteBalanceLevels,
		Zoom:               raw.Zoom,
	}

	var err error
	if caps.Features, err = enums.ParseFeatures(raw.Features); err != nil {
		return nil, errors.Wrap(err, "features")
	}

	parsers := []struct {
		name  string
		parse func() error
	}{
		{"modes", func() (e error) { caps.Modes, e = enums.ParseModeSet(raw.Modes); return }},
		{"flashModes", func() (e error) { caps.FlashModes, e = enums.ParseFlashModeSet(raw.FlashModes); return }},
		{"focusModes", func() (e error) { caps.FocusModes, e = enums.ParseFocusModeSet(raw.FocusModes); return }},
		{"focusPoints", func() (e error) { caps.FocusPoints, e = enums.ParseFocusPointsSet(raw.FocusPoints); return }},
		{"exposureModes", func() (e error) {
			caps.ExposureModes, e = enums.ParseExposureModeSet(raw.ExposureModes)
			return
		}},
		{"isoModes", func() (e error) { caps.IsoModes, e = enums.ParseIsoModeSet(raw.IsoModes); return }},
		{"whiteBalanceModes", func() (e error) {
			caps.WhiteBalanceModes, e = enums.ParseWhiteBalanceModeSet(raw.WhiteBalanceModes)
			return
		}},
		{"meteringModes", func() (e error) {
			caps.MeteringModes, e = enums.ParseMeteringModeSet(raw.MeteringModes)
			return
		}},
		{"aspectRatios", func() (e error) {
			caps.AspectRatios, e = enums.ParseAspectRatioSet(raw.AspectRatios)
			return
		}},
		{"resolutions", func() (e error) { caps.Resolutions, e = enums.ParseResolutionSet(raw.Resolutions); return }},
		{"qualities", func() (e error) { caps.Qualities, e = enums.ParseQualitySet(raw.Qualities); return }},
		{"audio", func() (e error) { caps.AudioStates, e = enums.ParseAudioSet(raw.Audio); return }},
		{"previewModes", func() (e error) { caps.PreviewModes, e = enums.ParsePreviewModeSet(raw.PreviewModes); return }},
	}

	for _, v := range parsers {
		if err := v.parse(); err != nil {
			return nil, errors.Wrap(err, v.name)
		}
	}

	return caps, nil
}
