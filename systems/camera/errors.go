package camera

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind describes camera error category.
type ErrKind int

const (
	// KindNone describes non-camera error.
	KindNone ErrKind = iota
	// KindBackendMissing describes absent backend.
	KindBackendMissing
	// KindViewfinderNotSupported describes absent viewfinder.
	KindViewfinderNotSupported
	// KindModeNotSupported describes unsupported mode.
	KindModeNotSupported
	// KindInvalidMode describes setting not available in the current mode.
	KindInvalidMode
	// KindFlashModeNotSupported describes unsupported flash mode.
	KindFlashModeNotSupported
	// KindFocusModeNotSupported describes unsupported focus mode.
	KindFocusModeNotSupported
	// KindInvalidFocusMode describes focus setting conflicting with the current focus mode.
	KindInvalidFocusMode
	// KindAutofocusLocked describes focus change while autofocus is locked.
	KindAutofocusLocked
	// KindExposureModeNotSupported describes unsupported exposure mode.
	KindExposureModeNotSupported
	// KindIsoSensitivityModeNotSupported describes unsupported ISO mode.
	KindIsoSensitivityModeNotSupported
	// KindWhiteBalanceModeNotSupported describes unsupported white balance mode.
	KindWhiteBalanceModeNotSupported
	// KindMeteringModeNotSupported describes unsupported metering mode.
	KindMeteringModeNotSupported
	// KindAspectRatioNotSupported describes unsupported aspect ratio.
	KindAspectRatioNotSupported
	// KindQualityNotSupported describes unsupported quality.
	KindQualityNotSupported
	// KindResolutionNotSupported describes unsupported resolution.
	KindResolutionNotSupported
	// KindLockNotPossible describes lock which can't be set.
	KindLockNotPossible
	// KindZoomNotSupported describes absent zoom.
	KindZoomNotSupported
	// KindZoomOutOfRange describes zoom outside of the allowed range.
	KindZoomOutOfRange
	// KindAudioNotSupported describes unsupported audio state.
	KindAudioNotSupported
	// KindPreviewNotSupported describes unsupported preview mode.
	KindPreviewNotSupported
	// KindFailed describes backend failure.
	KindFailed
)

var errKindNames = []string{"none", "backend missing", "viewfinder not supported", "mode not supported",
	"invalid mode", "flash mode not supported", "focus mode not supported", "invalid focus mode",
	"autofocus locked", "exposure mode not supported", "iso sensitivity mode not supported",
	"white balance mode not supported", "metering mode not supported", "aspect ratio not supported",
	"quality not supported", "resolution not supported", "lock not possible", "zoom not supported",
	"zoom out of range", "audio not supported", "preview not supported", "failed"}

// String returns kind name.
func (k ErrKind) String() string {
	if k < 0 || int(k) >= len(errKindNames) {
		return "unknown"
	}

	return errKindNames[k]
}

// Error is returned by every camera manager operation.
type Error struct {
	Kind  ErrKind
	Op    string
	Value interface{}
	Err   error
}

// Error formats output.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if nil != e.Value {
		msg = fmt.Sprintf("%s (%v)", msg, e.Value)
	}

	if nil != e.Err {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}

	return msg
}

// Cause returns underlying error.
func (e *Error) Cause() error {
	return e.Err
}

// KindOf returns camera error kind.
func KindOf(err error) ErrKind {
	e, ok := err.(*Error)
	if !ok {
		return KindNone
	}

	return e.Kind
}

// IsKind checks whether err is a camera error of the requested kind.
func IsKind(err error, kind ErrKind) bool {
	return nil != err && KindOf(err) == kind
}

// Constructs a validation error.
func newError(kind ErrKind, op string, value interface{}) error {
	return &Error{Kind: kind, Op: op, Value: value}
}

// Constructs a backend failure error.
func newFailed(op string, value interface{}, err error) error {
	return &Error{
		Kind:  KindFailed,
		Op:    op,
		Value: value,
		Err:   errors.Wrapf(err, "%s failed with value %v", op, value),
	}
}

// ErrNoOperation defines operation not implemented by the backend.
type ErrNoOperation struct {
}

// Error formats output.
func (*ErrNoOperation) Error() string {
	return "operation is not implemented by the backend"
}

// ErrNoViewfinderSurface defines declared viewfinder without surface.
type ErrNoViewfinderSurface struct {
}

// Error formats output.
func (*ErrNoViewfinderSurface) Error() string {
	return "backend doesn't provide viewfinder surface"
}

// ErrNoCapabilities defines backend without usable capabilities.
type ErrNoCapabilities struct {
}

// Error formats output.
func (*ErrNoCapabilities) Error() string {
	return "backend doesn't provide usable capabilities"
}

// ErrNoBus defines backend without message bus.
type ErrNoBus struct {
}

// Error formats output.
func (*ErrNoBus) Error() string {
	return "backend doesn't provide message bus"
}

// ErrNoFrame defines preview notification without frame.
type ErrNoFrame struct {
}

// Error formats output.
func (*ErrNoFrame) Error() string {
	return "preview notification has no frame"
}
