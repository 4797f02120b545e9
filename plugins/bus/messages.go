package bus

import (
	"time"

	"github.com/go-home-io/camera/plugins/camera/enums"
)

// Returns current time in nanoseconds.
func now() int64 {
	return time.Now().UTC().UnixNano()
}

// NewStateChangedMessage constructs pipeline state transition message.
func NewStateChangedMessage(source string, oldState, newState enums.PipelineState) *Message {
	return &Message{
		Type:     MsgStateChanged,
		Source:   source,
		SendTime: now(),
		OldState: oldState,
		NewState: newState,
	}
}

// NewErrorMessage constructs fatal pipeline error message.
func NewErrorMessage(source string, err error) *Message {
	return &Message{Type: MsgError, Source: source, SendTime: now(), Err: err}
}

// NewWarningMessage constructs pipeline warning message.
func NewWarningMessage(source string, err error) *Message {
	return &Message{Type: MsgWarning, Source: source, SendTime: now(), Err: err}
}

// NewFocusDoneMessage constructs autofocus result message.
func NewFocusDoneMessage(source string, status enums.FocusStatus) *Message {
	return &Message{Type: MsgFocusDone, Source: source, SendTime: now(), FocusStatus: status}
}

// NewShakeRiskMessage constructs camera shake warning.
func NewShakeRiskMessage(source string) *Message {
	return &Message{Type: MsgShakeRisk, Source: source, SendTime: now()}
}

// NewCaptureStartMessage constructs capture start notification.
func NewCaptureStartMessage(source string) *Message {
	return &Message{Type: MsgCaptureStart, Source: source, SendTime: now()}
}

// NewCaptureEndMessage constructs capture end notification.
func NewCaptureEndMessage(source string) *Message {
	return &Message{Type: MsgCaptureEnd, Source: source, SendTime: now()}
}

// NewPictureGotMessage constructs picture available notification.
func NewPictureGotMessage(source string, filename string) *Message {
	return &Message{Type: MsgPictureGot, Source: source, SendTime: now(), Filename: filename}
}

// NewPreviewFrameMessage constructs preview frame notification.
func NewPreviewFrameMessage(source string, frame *Frame) *Message {
	return &Message{Type: MsgPreviewFrame, Source: source, SendTime: now(), Frame: frame}
}

// NewPictureSavedMessage constructs picture saved notification.
func NewPictureSavedMessage(source string, filename string) *Message {
	return &Message{Type: MsgPictureSaved, Source: source, SendTime: now(), Filename: filename}
}
