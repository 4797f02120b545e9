package camera

import (
	"fmt"

	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
)

// Checks that setting is available in the current mode.
func (s *session) checkMode(op string, required enums.Mode, value interface{}) error {
	if enums.ModeNone == required || s.state.Mode == required {
		return nil
	}

	return newError(KindInvalidMode, op, value)
}

// Checks that all required features are advertised.
func (s *session) checkFeature(op string, kind ErrKind, features enums.Feature, value interface{}) error {
	if s.caps.HasFeature(features) {
		return nil
	}

	return newError(kind, op, value)
}

// Checks that at least one of the features is advertised.
func (s *session) checkAnyFeature(op string, kind ErrKind, features enums.Feature) error {
	if s.caps.Features.HasAny(features) {
		return nil
	}

	return newError(kind, op, nil)
}

// Invokes backend operation with a copy of the current configuration.
func (s *session) dispatch(op enums.Operation, value interface{}, call func(current *camera.State) error) error {
	if !s.caps.HasOperation(op) {
		return newFailed(op.String(), value, &ErrNoOperation{})
	}

	err := call(s.state.Copy())
	if err != nil {
		s.logger.Error("Backend operation failed", err, common.LogOperationToken, op.String(),
			common.LogValueToken, fmt.Sprintf("%v", value))
		return newFailed(op.String(), value, err)
	}

	s.logger.Debug("Backend operation succeeded", common.LogOperationToken, op.String(),
		common.LogValueToken, fmt.Sprintf("%v", value))
	return nil
}
