package systems

import (
	"strings"

	"github.com/pkg/errors"
)

// SystemType is an enum describing known config systems.
type SystemType int

const (
	// SysLogger describes logger system.
	SysLogger SystemType = iota
	// SysCamera describes camera backend system.
	SysCamera
	// SysServer describes control server system.
	SysServer
	// SysEvents describes events delivery system.
	SysEvents
	// SysPreview describes preview post-processing system.
	SysPreview
	// SysCapture describes capture correlation system.
	SysCapture
	// SysValidator describes config validator.
	SysValidator
	// SysConfig describes config files loader.
	SysConfig
)

var systemTypeNames = []string{"logger", "camera", "server", "events", "preview", "capture", "validator", "config"}

// String returns system name.
func (i SystemType) String() string {
	if i < 0 || int(i) >= len(systemTypeNames) {
		return "unknown"
	}

	return systemTypeNames[i]
}

// SystemTypeString returns system by its name.
func SystemTypeString(s string) (SystemType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for ii, v := range systemTypeNames {
		if v == s {
			return SystemType(ii), nil
		}
	}

	return 0, errors.Errorf("%s does not belong to SystemType values", s)
}
