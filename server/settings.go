package server

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/providers"
)

// Applies setting out of the request payload.
type settingSetter func(providers.ICameraProvider, *camera.State) error

// Known settings.
// Payload uses state field names, e.g. {"flashMode": "auto"}.
var settingSetters = map[string]settingSetter{
	"mode": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetMode(p.Mode, nil)
	},
	"flash": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetFlashMode(p.FlashMode, nil)
	},
	"focus": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetFocusMode(p.FocusMode, p.MacroEnabled, nil)
	},
	"focus-region": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetFocusRegionPattern(p.FocusPoints, p.ActivePoints, nil)
	},
	"exposure": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetExposureMode(p.ExposureMode, nil)
	},
	"exposure-comp": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetExposureComp(p.ExposureComp, nil)
	},
	"iso": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetIsoSensitivityMode(p.IsoMode, p.IsoLevel, nil)
	},
	"white-balance": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetWhiteBalanceMode(p.WhiteBalanceMode, p.WhiteBalanceLevel, nil)
	},
	"metering": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetMeteringMode(p.MeteringMode, nil)
	},
	"format": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetAspectRatioResolution(p.AspectRatio, p.Resolution, nil)
	},
	"quality": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetQuality(p.Quality, nil)
	},
	"locks": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetLocks(p.Locks, nil)
	},
	"zoom": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetZoom(p.Zoom, nil)
	},
	"audio": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetAudio(p.Audio, nil)
	},
	"preview": func(c providers.ICameraProvider, p *camera.State) error {
		return c.SetPreviewMode(p.PreviewMode, nil)
	},
}
