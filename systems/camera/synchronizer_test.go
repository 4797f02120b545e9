package camera

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Posts message from a separate goroutine and waits for completion.
func postFromGoroutine(t *testing.T, post func(*bus.Message) error, msg *bus.Message) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, post(msg))
	}()

	<-done
}

// Tests that lifecycle events are delivered in order of receipt.
func TestLifecycleOrder(t *testing.T) {
	defer leaktest.CheckTimeout(t, 2*time.Second)()

	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	b := env.backend.MsgBus

	for ii := 0; ii < 10; ii++ {
		name := fmt.Sprintf("picture_%d.jpg", ii)
		postFromGoroutine(t, b.PostSync, bus.NewCaptureStartMessage(""))
		postFromGoroutine(t, b.PostSync, bus.NewPictureGotMessage("", name))
		postFromGoroutine(t, b.PostSync, bus.NewCaptureEndMessage(""))
	}

	for ii := 0; ii < 10; ii++ {
		assert.Equal(t, enums.EvCaptureStart, waitEvent(t, env.events).Type)
		e := waitEvent(t, env.events)
		assert.Equal(t, enums.EvPictureGot, e.Type)
		assert.Equal(t, fmt.Sprintf("picture_%d.jpg", ii), e.Filename)
		assert.Equal(t, "test", e.Session)
		assert.Equal(t, enums.EvCaptureEnd, waitEvent(t, env.events).Type)
	}

	assert.False(t, env.manager.IsCapturing())
}

// Tests capturing flag and duplicate notifications.
func TestCapturingFlag(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	b := env.backend.MsgBus

	require.NoError(t, b.PostSync(bus.NewCaptureStartMessage("")))
	assert.True(t, env.manager.IsCapturing())
	require.NoError(t, b.PostSync(bus.NewCaptureStartMessage("")))

	require.NoError(t, b.PostSync(bus.NewCaptureEndMessage("")))
	assert.False(t, env.manager.IsCapturing())
	require.NoError(t, b.PostSync(bus.NewCaptureEndMessage("")))

	assert.Equal(t, enums.EvCaptureStart, waitEvent(t, env.events).Type)
	assert.Equal(t, enums.EvCaptureEnd, waitEvent(t, env.events).Type)
	noEvents(t, env.events)
}

// Tests concurrent preview frames.
func TestConcurrentPreview(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	b := env.backend.MsgBus

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	wg := sync.WaitGroup{}
	for ii := 0; ii < 50; ii++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, b.PostSync(bus.NewPreviewFrameMessage("", &bus.Frame{Image: img})))
		}()
	}

	wg.Wait()
	for ii := 0; ii < 50; ii++ {
		e := waitEvent(t, env.events)
		assert.Equal(t, enums.EvPreviewImage, e.Type)
		assert.Equal(t, img, e.Frame.Image)
	}
}

// Tests encoded preview frames.
func TestEncodedPreview(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	b := env.backend.MsgBus

	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))

	require.NoError(t, b.PostSync(bus.NewPreviewFrameMessage("", &bus.Frame{Data: buf.Bytes()})))
	require.NoError(t, b.PostSync(bus.NewPreviewFrameMessage("", &bus.Frame{Data: []byte("garbage")})))
	require.NoError(t, b.PostSync(bus.NewPreviewFrameMessage("", nil)))

	e := waitEvent(t, env.events)
	require.NotNil(t, e.Frame)
	assert.Equal(t, 8, e.Frame.Image.Bounds().Dx())
	noEvents(t, env.events)
}

// Tests backend sync hook.
func TestSyncHook(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()

	var hooked int32
	env.backend.SyncHook = func(m *bus.Message) bool {
		atomic.AddInt32(&hooked, 1)
		return bus.MsgPictureGot == m.Type
	}

	require.NoError(t, env.backend.MsgBus.PostSync(bus.NewPictureGotMessage("", "a.jpg")))
	require.NoError(t, env.backend.MsgBus.PostSync(bus.NewCaptureStartMessage("")))

	assert.Equal(t, enums.EvCaptureStart, waitEvent(t, env.events).Type)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hooked))
}
