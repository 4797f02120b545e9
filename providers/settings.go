package providers

import (
	"time"

	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/common"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system string, provider string) common.ILoggerProvider
	Cron() ICronProvider
	Validator() IValidatorProvider
	Session() string
	ServerSettings() *ServerSettings
	EventsSettings() *EventsSettings
	PreviewSettings() *PreviewSettings
	CaptureSettings() *CaptureSettings
	BackendSettings() *BackendSettings
	CapabilitiesOverride() *camera.Capabilities
}

// ServerSettings has configured data for the control server.
type ServerSettings struct {
	Port     int  `yaml:"port" validate:"required,port" default:"8090"`
	Disabled bool `yaml:"disabled"`
}

// EventsSettings has configured data for the events delivery.
type EventsSettings struct {
	QueueSize        int `yaml:"queueSize" validate:"gte=1,lte=4096" default:"64"`
	SubscriberBuffer int `yaml:"subscriberBuffer" validate:"gte=1,lte=4096" default:"32"`
}

// PreviewSettings has configured data for preview frames post-processing.
type PreviewSettings struct {
	Width    int  `yaml:"width" validate:"gte=0,lte=4000"`
	Quality  uint `yaml:"quality" validate:"percent" default:"75"`
	Distance int  `yaml:"distance" validate:"gte=0,lte=64"`
}

// CaptureSettings has configured data for the capture correlation.
type CaptureSettings struct {
	PendingTTL time.Duration `yaml:"pendingTTL" validate:"gte=0" default:"5m"`
}

// BackendSettings has configured camera backend.
type BackendSettings struct {
	Provider     string                `yaml:"provider" validate:"required,oneof=simulator" default:"simulator"`
	Session      string                `yaml:"session"`
	OutputDir    string                `yaml:"outputDir" default:"."`
	Capabilities *CapabilitiesSettings `yaml:"capabilities"`
}

// CapabilitiesSettings has explicit capabilities descriptor, as it's written in config.
type CapabilitiesSettings struct {
	Features           []string          `yaml:"features" validate:"required,min=1"`
	Modes              []string          `yaml:"modes"`
	FlashModes         []string          `yaml:"flashModes"`
	FocusModes         []string          `yaml:"focusModes"`
	FocusPoints        []string          `yaml:"focusPoints"`
	ExposureModes      []string          `yaml:"exposureModes"`
	IsoModes           []string          `yaml:"isoModes"`
	WhiteBalanceModes  []string          `yaml:"whiteBalanceModes"`
	MeteringModes      []string          `yaml:"meteringModes"`
	AspectRatios       []string          `yaml:"aspectRatios"`
	Resolutions        []string          `yaml:"resolutions"`
	Qualities          []string          `yaml:"qualities"`
	Audio              []string          `yaml:"audio"`
	PreviewModes       []string          `yaml:"previewModes"`
	ExposureComp       camera.Range      `yaml:"exposureComp"`
	IsoLevels          camera.IntRange   `yaml:"isoLevels"`
	WhiteBalanceLevels camera.IntRange   `yaml:"whiteBalanceLevels"`
	Zoom               camera.ZoomLimits `yaml:"zoom"`
}
