package providers

import (
	"github.com/go-home-io/camera/plugins/bus"
)

// IBusProvider defines in-process backend message bus.
// Backends post notifications, the camera manager watches them.
type IBusProvider interface {
	bus.IMessageBus

	Post(msg *bus.Message) error
	PostSync(msg *bus.Message) error
	Close()
}
