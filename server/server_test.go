package server

import (
	"encoding/json"
	"image"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-home-io/camera/mocks"
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/providers"
	manager "github.com/go-home-io/camera/systems/camera"
	"github.com/go-home-io/camera/systems/fanout"
	"github.com/go-home-io/camera/systems/preview"
	"github.com/go-home-io/camera/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns capabilities used by tests.
func testCaps() *camera.Capabilities {
	return &camera.Capabilities{
		Features: enums.FeatureViewfinder | enums.FeatureFlash | enums.FeatureAutoFocus |
			enums.FeatureQuality | enums.FeatureAudio | enums.FeatureOpticalZoom,
		Modes:       enums.NewModeSet(enums.ModeStill, enums.ModeVideo),
		FlashModes:  enums.NewFlashModeSet(enums.FlashModeOff, enums.FlashModeOn, enums.FlashModeAuto),
		FocusModes:  enums.NewFocusModeSet(enums.FocusModeAuto),
		Qualities:   enums.NewQualitySet(enums.QualityLow, enums.QualityHigh),
		AudioStates: enums.NewAudioSet(enums.AudioOn, enums.AudioOff),
		Zoom:        camera.ZoomLimits{MaxOptical: 3},
	}
}

type serverEnv struct {
	server  *CameraServer
	manager *manager.Manager
	backend *mocks.FakeBackend
	fanOut  providers.IEventFanOutProvider
	preview providers.IPreviewProvider
	http    *httptest.Server
}

// Constructs server with optionally attached fake backend.
func newServerEnv(t *testing.T, attach bool) *serverEnv {
	log := mocks.FakeNewLogger(nil)
	env := &serverEnv{
		backend: mocks.FakeNewBackend(testCaps()),
		fanOut:  fanout.NewFanOut(&fanout.ConstructFanOut{Logger: log, Buffer: 32}),
		preview: preview.NewProcessor(&preview.ConstructProcessor{Logger: log}),
	}

	env.manager = manager.NewManager(&manager.ConstructManager{
		Logger:  log,
		FanOut:  env.fanOut,
		Preview: env.preview,
		Session: "front",
	})

	if attach {
		require.NoError(t, env.manager.Attach(env.backend, nil))
	}

	env.server = NewServer(&ConstructServer{
		Logger:    log,
		Camera:    env.manager,
		FanOut:    env.fanOut,
		Preview:   env.preview,
		Validator: utils.NewValidator(log),
	})

	env.http = httptest.NewServer(env.server.Router())
	return env
}

// Releases resources.
func (e *serverEnv) close() {
	e.http.Close()
	e.manager.Close()
}

// Performs request and returns status with body.
func (e *serverEnv) do(t *testing.T, method string, path string, body string) (int, string) {
	req, err := http.NewRequest(method, e.http.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

// Tests ping.
func TestPing(t *testing.T) {
	env := newServerEnv(t, false)
	defer env.close()

	code, body := env.do(t, http.MethodGet, "/pub/ping", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "OK")
}

// Tests requests without attached backend.
func TestNoBackend(t *testing.T) {
	env := newServerEnv(t, false)
	defer env.close()

	data := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/capabilities", ""},
		{http.MethodGet, "/api/v1/state", ""},
		{http.MethodPut, "/api/v1/settings/mode", `{"mode":"still"}`},
		{http.MethodPost, "/api/v1/capture/still", `{"filename":"a.jpg"}`},
		{http.MethodPost, "/api/v1/video/finish", ""},
	}

	for _, v := range data {
		code, body := env.do(t, v.method, v.path, v.body)
		assert.Equal(t, http.StatusServiceUnavailable, code, v.path)
		assert.Contains(t, body, "backend missing", v.path)
	}
}

// Tests capabilities and state.
func TestCapabilitiesAndState(t *testing.T) {
	env := newServerEnv(t, true)
	defer env.close()

	code, body := env.do(t, http.MethodGet, "/api/v1/capabilities", "")
	require.Equal(t, http.StatusOK, code)

	caps := &capabilitiesResponse{}
	require.NoError(t, json.Unmarshal([]byte(body), caps))
	assert.Equal(t, "front", caps.Session)
	assert.Contains(t, caps.Features, "flash")
	assert.Equal(t, []string{"off", "on", "auto"}, caps.FlashModes)
	assert.Contains(t, caps.Operations, "capture-still")
	assert.Equal(t, 3.0, caps.Zoom.MaxOptical)

	code, _ = env.do(t, http.MethodPut, "/api/v1/settings/mode", `{"mode":"still"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = env.do(t, http.MethodPut, "/api/v1/settings/flash", `{"flashMode":"auto"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = env.do(t, http.MethodGet, "/api/v1/state", "")
	require.Equal(t, http.StatusOK, code)

	state := &stateResponse{}
	require.NoError(t, json.Unmarshal([]byte(body), state))
	assert.Equal(t, enums.ModeStill, state.State.Mode)
	assert.Equal(t, enums.FlashModeAuto, state.State.FlashMode)
	assert.False(t, state.Capturing)
}

// Tests errors mapping.
func TestSettingErrors(t *testing.T) {
	env := newServerEnv(t, true)
	defer env.close()

	code, _ := env.do(t, http.MethodPut, "/api/v1/settings/mode", `{"mode":"still"}`)
	require.Equal(t, http.StatusOK, code)

	env.backend.Fail[enums.OpSetQuality] = errors.New("device busy")

	data := []struct {
		path   string
		body   string
		status int
		kind   string
	}{
		{"/api/v1/settings/flash", `{"flashMode":"red-eye"}`, http.StatusUnprocessableEntity, "flash mode not supported"},
		{"/api/v1/settings/audio", `{"audio":"on"}`, http.StatusConflict, "invalid mode"},
		{"/api/v1/settings/zoom", `{"zoom":7}`, http.StatusUnprocessableEntity, "zoom out of range"},
		{"/api/v1/settings/quality", `{"quality":"high"}`, http.StatusInternalServerError, "failed"},
		{"/api/v1/settings/mode", `{"mode":"panorama"}`, http.StatusBadRequest, ""},
		{"/api/v1/settings/mode", `{"mode":`, http.StatusBadRequest, ""},
		{"/api/v1/settings/teleport", `{}`, http.StatusNotFound, ""},
	}

	for _, v := range data {
		code, body := env.do(t, http.MethodPut, v.path, v.body)
		assert.Equal(t, v.status, code, v.body)
		if "" != v.kind {
			resp := &errorResponse{}
			require.NoError(t, json.Unmarshal([]byte(body), resp))
			assert.Equal(t, v.kind, resp.Kind, v.body)
		}
	}
}

// Tests capture endpoints.
func TestCapture(t *testing.T) {
	env := newServerEnv(t, true)
	defer env.close()

	code, _ := env.do(t, http.MethodPost, "/api/v1/capture/still", `{"filename":"a.jpg"}`)
	assert.Equal(t, http.StatusConflict, code)

	env.do(t, http.MethodPut, "/api/v1/settings/mode", `{"mode":"still"}`)
	code, _ = env.do(t, http.MethodPost, "/api/v1/capture/still", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = env.do(t, http.MethodPost, "/api/v1/capture/still", `{"filename":"../a.jpg"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = env.do(t, http.MethodPost, "/api/v1/capture/still", `{"filename":"a.jpg"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, env.backend.CallsCount(enums.OpCaptureStill))

	code, _ = env.do(t, http.MethodPost, "/api/v1/video/start", `{"filename":"a.mp4"}`)
	assert.Equal(t, http.StatusConflict, code)

	env.do(t, http.MethodPut, "/api/v1/settings/mode", `{"mode":"video"}`)
	for _, v := range []string{"start", "pause", "resume", "finish"} {
		code, _ = env.do(t, http.MethodPost, "/api/v1/video/"+v, `{"filename":"a.mp4"}`)
		assert.Equal(t, http.StatusOK, code, v)
	}

	assert.Equal(t, 2, env.backend.CallsCount(enums.OpPauseVideo))
	code, _ = env.do(t, http.MethodPost, "/api/v1/video/rewind", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

// Tests preview snapshot.
func TestPreviewSnapshot(t *testing.T) {
	env := newServerEnv(t, true)
	defer env.close()

	code, _ := env.do(t, http.MethodGet, "/api/v1/preview.jpg", "")
	assert.Equal(t, http.StatusNotFound, code)

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	require.NoError(t, env.backend.MsgBus.PostSync(bus.NewPreviewFrameMessage("", &bus.Frame{Image: img})))

	for ii := 0; ii < 200 && nil == env.preview.Last(); ii++ {
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get(env.http.URL + "/api/v1/preview.jpg")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
}

// Tests status mapping of non-camera errors.
func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusOf(&ErrBadRequest{}))
	assert.Equal(t, http.StatusNotFound, statusOf(&ErrUnknownSetting{Name: "x"}))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("x")))
}

// Tests server start and stop.
func TestStartStop(t *testing.T) {
	env := newServerEnv(t, false)
	defer env.close()

	srv := NewServer(&ConstructServer{
		Logger: mocks.FakeNewLogger(nil),
		Camera: env.manager,
		FanOut: env.fanOut,
		Port:   0,
	})

	require.NoError(t, srv.Start())
	defer srv.Stop()

	_, port, err := net.SplitHostPort(srv.Address())
	require.NoError(t, err)

	resp, err := http.Get("http://127.0.0.1:" + port + "/pub/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
