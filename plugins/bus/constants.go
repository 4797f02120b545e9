// Package bus contains backend message bus definitions.
package bus

// MessageType describes enum with known backend bus messages.
type MessageType int

const (
	// MsgStateChanged describes pipeline state transition.
	MsgStateChanged MessageType = iota
	// MsgError describes fatal pipeline error.
	MsgError
	// MsgWarning describes non-fatal pipeline warning.
	MsgWarning
	// MsgFocusDone describes finished autofocus run.
	MsgFocusDone
	// MsgShakeRisk describes camera shake warning.
	MsgShakeRisk
	// MsgCaptureStart describes started capture.
	MsgCaptureStart
	// MsgCaptureEnd describes finished capture.
	MsgCaptureEnd
	// MsgPictureGot describes available picture buffer.
	MsgPictureGot
	// MsgPreviewFrame describes ready preview frame.
	MsgPreviewFrame
	// MsgPictureSaved describes picture written by the backend.
	MsgPictureSaved
)

var messageTypeNames = []string{"state_changed", "error", "warning", "focus_done", "shake_risk",
	"capture_start", "capture_end", "picture_got", "preview_frame", "picture_saved"}

// String returns message type name.
func (i MessageType) String() string {
	if i < 0 || int(i) >= len(messageTypeNames) {
		return "unknown"
	}

	return messageTypeNames[i]
}

// IsLifecycle checks whether message belongs to the capture lifecycle.
func (i MessageType) IsLifecycle() bool {
	switch i {
	case MsgCaptureStart, MsgCaptureEnd, MsgPictureGot, MsgPreviewFrame:
		return true
	}

	return false
}

// IsKnown checks whether message type is defined.
func (i MessageType) IsKnown() bool {
	return i >= 0 && int(i) < len(messageTypeNames)
}
