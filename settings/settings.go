package settings

import (
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/go-home-io/camera/systems/logger"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger specifically for system and provider.
func (s *settingsProvider) PluginLogger(system string, provider string) common.ILoggerProvider {
	ctor := &logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system,
		Provider:     provider,
		Session:      s.session,
	}

	return logger.NewPluginLogger(ctor)
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// Session returns configured or generated session name.
func (s *settingsProvider) Session() string {
	return s.session
}

// ServerSettings returns control server settings.
func (s *settingsProvider) ServerSettings() *providers.ServerSettings {
	return s.server
}

// EventsSettings returns events delivery settings.
func (s *settingsProvider) EventsSettings() *providers.EventsSettings {
	return s.events
}

// PreviewSettings returns preview post-processing settings.
func (s *settingsProvider) PreviewSettings() *providers.PreviewSettings {
	return s.preview
}

// CaptureSettings returns capture correlation settings.
func (s *settingsProvider) CaptureSettings() *providers.CaptureSettings {
	return s.capture
}

// BackendSettings returns camera backend settings.
func (s *settingsProvider) BackendSettings() *providers.BackendSettings {
	return s.backend
}

// CapabilitiesOverride returns explicit capabilities descriptor, if configured.
func (s *settingsProvider) CapabilitiesOverride() *camera.Capabilities {
	if nil == s.override {
		return nil
	}

	return s.override.Copy()
}
