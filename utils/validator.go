package utils

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/creasty/defaults"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	"github.com/gobwas/glob"
	"gopkg.in/go-playground/validator.v9"
)

// Custom validation tags.
var customValidators = map[string]validator.Func{
	"percent":  percent,
	"port":     port,
	"glob":     pattern,
	"filename": filename,
}

// Validator shared by config loader and control server.
type validatorProvider struct {
	sync.Mutex
	validator *validator.Validate
	logger    common.ILoggerProvider
}

// NewValidator constructs a new validator with defaults applier.
func NewValidator(logger common.ILoggerProvider) providers.IValidatorProvider {
	v := validator.New()
	for name, fn := range customValidators {
		if err := v.RegisterValidation(name, fn); err != nil {
			logger.Error("Failed to register validation tag", err, common.LogNameToken, name)
		}
	}

	return &validatorProvider{
		logger:    logger,
		validator: v,
	}
}

// SetLogger replaces startup logger with configured one.
func (v *validatorProvider) SetLogger(logger common.ILoggerProvider) {
	v.Lock()
	defer v.Unlock()
	v.logger = logger
}

// Validate applies default values and checks validation tags.
// Object must be a pointer to a structure.
func (v *validatorProvider) Validate(object interface{}) bool {
	v.Lock()
	defer v.Unlock()

	if err := defaults.Set(object); err != nil {
		v.logger.Error("Failed to set default values", err)
		return false
	}

	err := v.validator.Struct(object)
	if nil == err {
		return true
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		v.logger.Error("Failed to validate structure", err)
		return false
	}

	for _, e := range errs {
		v.logger.Warn("Validation error", common.LogFieldToken, e.Namespace(), common.LogValueToken, e.Tag())
	}

	return false
}

// Percent value.
func percent(fl validator.FieldLevel) bool {
	return fl.Field().Uint() <= 100
}

// TCP port.
func port(fl validator.FieldLevel) bool {
	val := fl.Field().Int()
	return val > 0 && val <= 65535
}

// Events filter.
func pattern(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String())
	return nil == err
}

// Capture file name, directories are not allowed.
func filename(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if "" == strings.TrimSpace(name) || "." == name || ".." == name {
		return false
	}

	return filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}
