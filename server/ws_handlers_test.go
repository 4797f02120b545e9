package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-home-io/camera/plugins/bus"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type WSTestSuite struct {
	suite.Suite

	env *serverEnv
	url string
}

// Sets up attached camera with running server.
func (w *WSTestSuite) SetupTest() {
	w.env = newServerEnv(w.T(), true)
	w.url = "ws" + strings.TrimPrefix(w.env.http.URL, "http") + "/api/v1/events"
}

// Stops server.
func (w *WSTestSuite) TearDownTest() {
	w.env.close()
}

// Dials events endpoint.
func (w *WSTestSuite) dial(filter string) *websocket.Conn {
	url := w.url
	if "" != filter {
		url += "?filter=" + filter
	}

	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	w.Require().NoError(err)
	return c
}

// Tests that only matching events are delivered.
func (w *WSTestSuite) TestFilteredEvents() {
	c := w.dial("capture-*")
	defer c.Close()

	b := w.env.backend.MsgBus
	w.Require().NoError(b.Post(bus.NewShakeRiskMessage("")))
	w.Require().NoError(b.Post(bus.NewCaptureStartMessage("")))
	w.Require().NoError(b.Post(bus.NewCaptureEndMessage("")))

	c.SetReadDeadline(time.Now().Add(5 * time.Second)) // nolint: errcheck
	types := make([]string, 0)
	for ii := 0; ii < 2; ii++ {
		msg := make(map[string]interface{})
		w.Require().NoError(c.ReadJSON(&msg))
		types = append(types, msg["type"].(string))
		w.Equal("front", msg["session"])
	}

	w.Equal([]string{"capture-start", "capture-end"}, types)
}

// Tests ping-pong.
func (w *WSTestSuite) TestPing() {
	c := w.dial("")
	defer c.Close()

	w.Require().NoError(c.WriteMessage(websocket.TextMessage, []byte("ping")))
	c.SetReadDeadline(time.Now().Add(5 * time.Second)) // nolint: errcheck
	_, data, err := c.ReadMessage()
	w.Require().NoError(err)
	w.Equal("pong", string(data))
}

// Tests wrong filter.
func (w *WSTestSuite) TestWrongFilter() {
	_, resp, err := websocket.DefaultDialer.Dial(w.url+"?filter=%5B", nil)
	w.Error(err)
	w.Require().NotNil(resp)
	w.Equal(http.StatusBadRequest, resp.StatusCode)
}

// Tests WS events.
func TestWSTestSuite(t *testing.T) {
	suite.Run(t, new(WSTestSuite))
}
