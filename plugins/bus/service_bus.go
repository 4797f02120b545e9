package bus

import (
	"image"

	"github.com/go-home-io/camera/plugins/camera/enums"
)

// IMessageBus defines backend message bus.
// Watches receive ordinary messages through the queue.
// Sync handlers are invoked on the posting goroutine and may return true
// to drop the message before it reaches watches.
type IMessageBus interface {
	AddWatch(queue chan *Message) (int64, error)
	SetSyncHandler(handler func(*Message) bool) (int64, error)
	RemoveWatch(id int64)
}

// Frame contains preview frame data.
// Either Image or encoded Data (JPEG, PNG or GIF) has to be set.
type Frame struct {
	Image image.Image
	Data  []byte
}

// Message is a single backend notification.
type Message struct {
	Type     MessageType
	Source   string
	SendTime int64

	OldState    enums.PipelineState
	NewState    enums.PipelineState
	FocusStatus enums.FocusStatus
	Filename    string
	Frame       *Frame
	Err         error
}
