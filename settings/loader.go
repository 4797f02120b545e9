// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/go-home-io/camera/systems"
	"github.com/go-home-io/camera/systems/config"
	"github.com/go-home-io/camera/systems/logger"
	"github.com/go-home-io/camera/utils"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
	// Logger flush schedule.
	flushSpec = "@every 10s"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	Config   string `short:"c" long:"config" description:"Config file or folder. Defaults to ./camera.yaml."`
	LogLevel string `short:"l" long:"log-level" description:"Start-up log level, overridden by logger config."`

	Output io.Writer `no-flag:"true"`
}

// Defines loaded config record.
type rawProvider struct {
	System   string
	Provider string
	Config   []byte
}

// Logger config record.
type loggerSettings struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug dbg info warning warn error err"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	output    io.Writer

	session  string
	server   *providers.ServerSettings
	events   *providers.EventsSettings
	preview  *providers.PreviewSettings
	capture  *providers.CaptureSettings
	backend  *providers.BackendSettings
	override *camera.Capabilities
}

// Load reads system configuration.
func Load(options *StartUpOptions) (providers.ISettingsProvider, error) {
	s := &settingsProvider{
		output: options.Output,
	}

	if nil == s.output {
		s.output = os.Stdout
	}

	s.logger, _ = logger.NewLoggerProvider(&logger.ConstructLogger{
		Provider: logger.ProviderConsole,
		Level:    options.LogLevel,
		Output:   s.output,
	})
	s.validator = utils.NewValidator(s.logger)

	location := options.Config
	if "" == location {
		location = utils.GetDefaultConfigPath()
	}

	cfg := config.NewConfigProvider(&config.ConstructConfig{
		Location: location,
		Logger:   s.logger,
	})

	dataChan, err := cfg.Load()
	if err != nil {
		s.logger.Error("Failed to load configuration", err, common.LogSystemToken, logSystem,
			common.LogFileToken, location)
		return nil, err
	}

	tpl := newTemplateProvider(&constructTemplate{Logger: s.logger})
	allProviders := make([]*rawProvider, 0)
	for fileData := range dataChan {
		provs, err := s.loadFile(fileData, tpl)
		if err != nil {
			return nil, err
		}

		allProviders = append(allProviders, provs...)
	}

	allProviders, err = s.loadLoggerProvider(allProviders)
	if err != nil {
		return nil, err
	}

	for _, v := range allProviders {
		if err := s.parseProvider(v); err != nil {
			s.logger.Error("Failed to load config record", err, common.LogProviderToken, v.Provider,
				common.LogSystemToken, v.System)
			return nil, err
		}
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Processes single yaml file.
func (s *settingsProvider) loadFile(fileData []byte, templateProvider ITemplateProvider) ([]*rawProvider, error) {
	fileData, err := templateProvider.Process(fileData)
	if err != nil {
		return nil, err
	}

	provs := make([]*rawProvider, 0)
	decoder := yaml.NewDecoder(bytes.NewReader(fileData))
	for {
		var value map[string]interface{}
		err := decoder.Decode(&value)
		if err == io.EOF {
			break
		}

		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, logSystem)
			return nil, err
		}

		if nil == value {
			continue
		}

		componentType := ""
		componentProvider := ""

		if cs, ok := value["system"].(string); ok {
			componentType = strings.ToLower(cs)
		}

		if ct, ok := value["provider"].(string); ok {
			componentProvider = strings.ToLower(ct)
		}

		if componentType == "" {
			s.logger.Warn("Failed to parse a record in the config file: system is not defined",
				common.LogSystemToken, logSystem)
			continue
		}

		delete(value, "system")
		byteData, err := yaml.Marshal(value)
		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, componentType,
				common.LogProviderToken, componentProvider)
			return nil, err
		}

		provs = append(provs, &rawProvider{
			Provider: componentProvider,
			System:   componentType,
			Config:   byteData,
		})
	}

	return provs, nil
}

// Loads logger configuration.
func (s *settingsProvider) loadLoggerProvider(provs []*rawProvider) ([]*rawProvider, error) {
	providersLeft := make([]*rawProvider, 0)
	found := false
	for _, v := range provs {
		if v.System != systems.SysLogger.String() {
			providersLeft = append(providersLeft, v)
			continue
		}

		if found {
			s.logger.Warn("Duplicated logger", common.LogProviderToken, v.Provider,
				common.LogSystemToken, v.System)
			continue
		}

		set := &loggerSettings{}
		if err := s.unmarshal(v, set); err != nil {
			return nil, err
		}

		log, err := logger.NewLoggerProvider(&logger.ConstructLogger{
			Provider: v.Provider,
			Level:    set.Level,
			Format:   set.Format,
			Output:   s.output,
		})
		if err != nil {
			s.logger.Error("Failed to load logger", err, common.LogProviderToken, v.Provider)
			return nil, err
		}

		found = true
		s.logger = log
		s.validator.SetLogger(s.PluginLogger(systems.SysValidator.String(), "camera"))
	}

	return providersLeft, nil
}

// Processes single config record.
func (s *settingsProvider) parseProvider(provider *rawProvider) error {
	s.logger.Debug("Processing config", common.LogProviderToken, provider.Provider,
		common.LogSystemToken, provider.System)

	sys, err := systems.SystemTypeString(provider.System)
	if err != nil {
		s.logger.Warn("Unknown config system", common.LogProviderToken, provider.Provider,
			common.LogSystemToken, provider.System)
		return nil
	}

	switch sys {
	case systems.SysCamera:
		if nil != s.backend {
			return &ErrDuplicatedSection{System: provider.System}
		}

		s.backend = &providers.BackendSettings{}
		return s.unmarshal(provider, s.backend)
	case systems.SysServer:
		if nil != s.server {
			return &ErrDuplicatedSection{System: provider.System}
		}

		s.server = &providers.ServerSettings{}
		return s.unmarshal(provider, s.server)
	case systems.SysEvents:
		if nil != s.events {
			return &ErrDuplicatedSection{System: provider.System}
		}

		s.events = &providers.EventsSettings{}
		return s.unmarshal(provider, s.events)
	case systems.SysPreview:
		if nil != s.preview {
			return &ErrDuplicatedSection{System: provider.System}
		}

		s.preview = &providers.PreviewSettings{}
		return s.unmarshal(provider, s.preview)
	case systems.SysCapture:
		if nil != s.capture {
			return &ErrDuplicatedSection{System: provider.System}
		}

		s.capture = &providers.CaptureSettings{}
		return s.unmarshal(provider, s.capture)
	}

	s.logger.Warn("Config system is not configurable", common.LogSystemToken, provider.System)
	return nil
}

// Unmarshals and validates config record.
func (s *settingsProvider) unmarshal(provider *rawProvider, set interface{}) error {
	if err := yaml.Unmarshal(provider.Config, set); err != nil {
		return err
	}

	if !s.validator.Validate(set) {
		return &ErrInvalidSection{System: provider.System}
	}

	return nil
}

// Applies defaults and builds derived settings.
func (s *settingsProvider) validate() error {
	if nil == s.backend {
		s.logger.Warn("Camera backend is not defined, using simulator", common.LogSystemToken, logSystem)
		s.backend = &providers.BackendSettings{}
	}

	if nil == s.server {
		s.server = &providers.ServerSettings{}
	}

	if nil == s.events {
		s.events = &providers.EventsSettings{}
	}

	if nil == s.preview {
		s.preview = &providers.PreviewSettings{}
	}

	if nil == s.capture {
		s.capture = &providers.CaptureSettings{}
	}

	for _, v := range []interface{}{s.backend, s.server, s.events, s.preview, s.capture} {
		if !s.validator.Validate(v) {
			return &ErrInvalidSection{System: logSystem}
		}
	}

	if nil != s.backend.Capabilities {
		caps, err := parseCapabilities(s.backend.Capabilities)
		if err != nil {
			s.logger.Error("Failed to parse capabilities", err, common.LogSystemToken, logSystem)
			return err
		}

		s.override = caps
	}

	s.session = utils.NormalizeName(s.backend.Session)
	if "" == s.session {
		s.session = utils.NormalizeName(namesgenerator.GetRandomName(0))
		s.logger.Info("Generated session name", common.LogSessionToken, s.session)
	}

	s.cron = utils.NewCron()
	if _, err := s.cron.AddFunc(flushSpec, s.flush); err != nil {
		s.logger.Error("Failed to register logger flushing", err, common.LogSystemToken, logSystem)
		return err
	}

	return nil
}

// Flushes current logger.
func (s *settingsProvider) flush() {
	s.logger.Flush()
}
