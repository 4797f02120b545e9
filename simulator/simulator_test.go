package simulator

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/go-home-io/camera/mocks"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
	manager "github.com/go-home-io/camera/systems/camera"
	"github.com/go-home-io/camera/systems/fanout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	manager *manager.Manager
	backend *Backend
	events  chan *common.Event
	dir     string
}

// Attaches simulator to a real manager.
func newTestEnv(t *testing.T) *testEnv {
	dir, err := ioutil.TempDir("", "camera_simulator")
	require.NoError(t, err)

	fo := fanout.NewFanOut(&fanout.ConstructFanOut{Logger: mocks.FakeNewLogger(nil), Buffer: 256})
	_, events, err := fo.Subscribe("*")
	require.NoError(t, err)

	env := &testEnv{
		manager: manager.NewManager(&manager.ConstructManager{
			Logger:  mocks.FakeNewLogger(nil),
			FanOut:  fo,
			Session: "sim",
		}),
		backend: NewBackend(&ConstructSimulator{
			FrameInterval: 10 * time.Millisecond,
			OutputDir:     dir,
		}),
		events: events,
		dir:    dir,
	}

	require.NoError(t, env.manager.Attach(env.backend, nil))
	return env
}

// Releases resources.
func (e *testEnv) close() {
	e.manager.Close()
	os.RemoveAll(e.dir)
}

// Waits for event of the type, skipping others.
func (e *testEnv) waitFor(t *testing.T, eventType enums.EventType) *common.Event {
	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev := <-e.events:
			if ev.Type == eventType {
				return ev
			}
		case <-timeout:
			t.Fatalf("%s was not received", eventType)
			return nil
		}
	}
}

// Tests discovered capabilities.
func TestCapabilities(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()

	caps, err := env.manager.Capabilities()
	require.NoError(t, err)

	assert.True(t, caps.HasFeature(enums.FeatureViewfinder|enums.FeatureAspectRatio|enums.FeatureResolution))
	assert.True(t, caps.HasOperation(enums.OpFinishVideo))
	assert.False(t, caps.HasOperation(enums.OpHandleBusMessage))
	assert.True(t, caps.SupportsFormat(enums.AspectRatio3x2, enums.ResolutionHigh))
	assert.False(t, caps.SupportsFormat(enums.AspectRatio3x2, enums.ResolutionLow))

	vf, err := env.manager.Viewfinder()
	require.NoError(t, err)
	assert.NotNil(t, vf)
}

// Tests still capture flow.
func TestStillCapture(t *testing.T) {
	defer leaktest.CheckTimeout(t, 3*time.Second)()

	env := newTestEnv(t)
	defer env.close()
	m := env.manager

	require.NoError(t, m.SetMode(enums.ModeStill, nil))
	ev := env.waitFor(t, enums.EvStateChanged)
	assert.Equal(t, enums.PipelineStatePlaying, ev.NewState)
	assert.Equal(t, enums.PipelineStatePlaying, env.backend.PipelineState())

	require.NoError(t, m.SetFocusMode(enums.FocusModeAuto, false, nil))
	require.NoError(t, m.SetLocks(enums.LockAutoFocus, nil))
	assert.Equal(t, enums.FocusStatusSuccess, env.waitFor(t, enums.EvFocusDone).FocusStatus)

	require.NoError(t, m.CaptureStill("shot.jpg", nil))
	env.waitFor(t, enums.EvCaptureStart)
	assert.NotNil(t, env.waitFor(t, enums.EvPreviewImage).Frame)
	assert.Equal(t, "shot.jpg", env.waitFor(t, enums.EvPictureGot).Filename)
	env.waitFor(t, enums.EvCaptureEnd)

	locks, err := m.Locks()
	require.NoError(t, err)
	assert.Equal(t, enums.LockNone, locks)

	assert.Equal(t, enums.FocusModeAuto, env.backend.Applied().FocusMode)
	for ii := 0; ii < 300; ii++ {
		if _, err := os.Stat(filepath.Join(env.dir, "shot.jpg")); nil == err {
			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("picture was not saved")
}

// Tests video recording flow.
func TestVideoRecording(t *testing.T) {
	env := newTestEnv(t)
	defer env.close()
	m := env.manager

	require.NoError(t, m.SetMode(enums.ModeVideo, nil))
	env.waitFor(t, enums.EvStateChanged)

	require.NoError(t, m.StartRecording("clip.mp4", nil))
	env.waitFor(t, enums.EvCaptureStart)
	ev := env.waitFor(t, enums.EvPreviewImage)
	require.NotNil(t, ev.Frame)
	assert.Equal(t, defaultWidth, ev.Frame.Image.Bounds().Dx())

	require.NoError(t, m.PauseRecording(false, nil))
	require.NoError(t, m.PauseRecording(true, nil))
	assert.True(t, m.IsCapturing())

	require.NoError(t, m.FinishRecording(nil))
	env.waitFor(t, enums.EvCaptureEnd)

	err := m.FinishRecording(nil)
	assert.True(t, manager.IsKind(err, manager.KindFailed))
}

// Tests that capture is refused while pipeline is down.
func TestNotPlaying(t *testing.T) {
	b := NewBackend(&ConstructSimulator{})
	require.NoError(t, b.Init(&camera.InitDataBackend{Logger: mocks.FakeNewLogger(nil)}))
	defer b.Unload()

	assert.IsType(t, &ErrNotPlaying{}, b.CaptureStill(b.Applied(), "a.jpg", nil))
	assert.IsType(t, &ErrNotPlaying{}, b.StartVideo(b.Applied(), "a.mp4", nil))
	assert.IsType(t, &ErrNotRecording{}, b.FinishVideo(b.Applied(), nil))
	assert.IsType(t, &ErrNotRecording{}, b.PauseVideo(b.Applied(), true, nil))
}
