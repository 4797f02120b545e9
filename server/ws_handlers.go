package server

import (
	"net/http"
	"sync"

	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/gorilla/websocket"
)

// Event sent to WS subscribers.
type wsEvent struct {
	Type        enums.EventType      `json:"type"`
	Session     string               `json:"session"`
	Time        int64                `json:"time"`
	Filename    string               `json:"filename,omitempty"`
	FocusStatus *enums.FocusStatus   `json:"focusStatus,omitempty"`
	OldState    *enums.PipelineState `json:"oldState,omitempty"`
	NewState    *enums.PipelineState `json:"newState,omitempty"`
	Hash        uint64               `json:"hash,omitempty"`
	Duplicate   bool                 `json:"duplicate,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// Converts application event into WS payload.
func newWSEvent(e *common.Event) *wsEvent {
	ev := &wsEvent{
		Type:     e.Type,
		Session:  e.Session,
		Time:     e.Time,
		Filename: e.Filename,
	}

	switch e.Type {
	case enums.EvFocusDone:
		status := e.FocusStatus
		ev.FocusStatus = &status
	case enums.EvStateChanged:
		oldState, newState := e.OldState, e.NewState
		ev.OldState = &oldState
		ev.NewState = &newState
	case enums.EvPreviewImage:
		if nil != e.Frame {
			ev.Hash = e.Frame.Hash
			ev.Duplicate = e.Frame.Duplicate
		}
	case enums.EvInternalError:
		if nil != e.Err {
			ev.Error = e.Err.Error()
		}
	}

	return ev
}

// Handles WS upgrade request.
// Events are filtered with optional glob pattern over event names.
func (s *CameraServer) handleWS(writer http.ResponseWriter, request *http.Request) {
	filter := request.URL.Query().Get(queryFilter)
	subID, events, err := s.fanOut.Subscribe(filter)
	if err != nil {
		s.Logger.Warn("Wrong events filter", common.LogSystemToken, logSystem, common.LogValueToken, filter)
		respondError(writer, &ErrBadRequest{})
		return
	}

	c, err := s.wsSettings.Upgrade(writer, request, nil)
	if err != nil {
		s.fanOut.Unsubscribe(subID)
		s.Logger.Error("Failed to establish a WS connection", err, common.LogSystemToken, logSystem)
		return
	}

	go s.processWSConnection(c, subID, events)
}

// WS connection allowing a single writer at a time.
type wsConn struct {
	sync.Mutex
	conn *websocket.Conn
}

// Writes JSON message.
func (c *wsConn) writeJSON(v interface{}) error {
	c.Lock()
	defer c.Unlock()
	return c.conn.WriteJSON(v)
}

// Writes raw message.
func (c *wsConn) writeMessage(mt int, data []byte) error {
	c.Lock()
	defer c.Unlock()
	return c.conn.WriteMessage(mt, data)
}

// Sends events into WS connection.
func (s *CameraServer) processWSConnection(raw *websocket.Conn, subID int64, events chan *common.Event) {
	conn := &wsConn{conn: raw}
	stop := make(chan bool, 1)
	go s.processIncomingWSMessages(conn, stop)
	defer s.fanOut.Unsubscribe(subID)
	defer raw.Close() // nolint: errcheck

	for {
		select {
		case <-stop:
			return
		case msg, ok := <-events:
			if !ok {
				return
			}

			if err := conn.writeJSON(newWSEvent(msg)); err != nil {
				s.Logger.Warn("Failed to send WS event", common.LogSystemToken, logSystem,
					common.LogErrorToken, err.Error())
				return
			}
		}
	}
}

// Processes incoming WS messages.
// Only ping requests are supported.
func (s *CameraServer) processIncomingWSMessages(conn *wsConn, stop chan bool) {
	for {
		mt, message, err := conn.conn.ReadMessage()
		if err != nil {
			s.Logger.Debug("Closing WS connection", common.LogSystemToken, logSystem)
			stop <- true
			return
		}

		if "ping" == string(message) {
			conn.writeMessage(mt, []byte("pong")) // nolint: gosec, errcheck
		}
	}
}
