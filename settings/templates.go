package settings

import (
	"bytes"
	"os"
	"text/template"

	"github.com/go-home-io/camera/plugins/common"
)

// ITemplateProvider defines template logic.
type ITemplateProvider interface {
	Process([]byte) ([]byte, error)
}

// Template engine provider.
type provider struct {
	logger    common.ILoggerProvider
	functions template.FuncMap
}

// Contains data required for a new template.
type constructTemplate struct {
	Logger common.ILoggerProvider
}

// Constructs a new template engine.
func newTemplateProvider(ctor *constructTemplate) *provider {
	provider := &provider{
		logger: ctor.Logger,
	}

	provider.functions = template.FuncMap{
		"env": provider.getEnvVariable,
	}

	return provider
}

// Process applies template functions to allow reading from environment variables.
func (p *provider) Process(rawFile []byte) ([]byte, error) {
	tpl, err := template.New("camera").Funcs(p.functions).Parse(string(rawFile))
	if err != nil {
		p.logger.Error("Failed to parse template", err, common.LogSystemToken, logSystem)
		return nil, err
	}

	b := bytes.Buffer{}
	if err := tpl.Execute(&b, nil); err != nil {
		p.logger.Error("Failed to execute template", err, common.LogSystemToken, logSystem)
		return nil, err
	}

	return b.Bytes(), nil
}

// Returns environment variable.
func (p *provider) getEnvVariable(name string) string {
	p.logger.Debug("Template is requesting environment variable",
		common.LogNameToken, name, common.LogSystemToken, logSystem)
	return os.Getenv(name)
}
