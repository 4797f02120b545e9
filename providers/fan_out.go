package providers

import "github.com/go-home-io/camera/plugins/common"

// IEventFanOutProvider defines application events fan-out.
type IEventFanOutProvider interface {
	Subscribe(pattern string) (int64, chan *common.Event, error)
	Unsubscribe(id int64)
	Publish(event *common.Event)
}
