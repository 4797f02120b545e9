package camera

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/go-home-io/camera/mocks"
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/systems/fanout"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests translation of ordinary notifications.
func TestOrdinaryMessages(t *testing.T) {
	defer leaktest.CheckTimeout(t, 2*time.Second)()

	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	b := env.backend.MsgBus

	require.NoError(t, b.Post(bus.NewFocusDoneMessage("", enums.FocusStatusSuccess)))
	require.NoError(t, b.Post(bus.NewWarningMessage("", errors.New("slow"))))
	require.NoError(t, b.Post(bus.NewShakeRiskMessage("")))
	require.NoError(t, b.Post(bus.NewCaptureStartMessage("")))

	e := waitEvent(t, env.events)
	assert.Equal(t, enums.EvFocusDone, e.Type)
	assert.Equal(t, enums.FocusStatusSuccess, e.FocusStatus)
	assert.Equal(t, enums.EvShakeRisk, waitEvent(t, env.events).Type)
	assert.Equal(t, enums.EvCaptureStart, waitEvent(t, env.events).Type)
	assert.Contains(t, env.logger.Messages(), "Pipeline warning")
}

// Tests fatal pipeline errors.
func TestPipelineError(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()

	fail := errors.New("device lost")
	require.NoError(t, env.backend.MsgBus.Post(bus.NewErrorMessage("", fail)))

	e := waitEvent(t, env.events)
	assert.Equal(t, enums.EvInternalError, e.Type)
	assert.Equal(t, fail, e.Err)
	assert.True(t, env.backend.IsStopped())
}

// Tests that playing pipeline gets current mode again.
func TestStateChanged(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	b := env.backend.MsgBus

	require.NoError(t, b.Post(bus.NewStateChangedMessage("", enums.PipelineStateNull, enums.PipelineStatePlaying)))
	e := waitEvent(t, env.events)
	assert.Equal(t, enums.EvStateChanged, e.Type)
	assert.Equal(t, enums.PipelineStatePlaying, e.NewState)
	assert.Equal(t, 0, env.backend.CallsCount(enums.OpSetMode))

	require.NoError(t, env.manager.SetMode(enums.ModeStill, nil))
	require.NoError(t, b.Post(bus.NewStateChangedMessage("", enums.PipelineStatePaused, enums.PipelineStatePlaying)))
	waitEvent(t, env.events)
	assert.Equal(t, 2, env.backend.CallsCount(enums.OpSetMode))

	require.NoError(t, b.Post(bus.NewStateChangedMessage("", enums.PipelineStatePlaying, enums.PipelineStatePaused)))
	waitEvent(t, env.events)
	assert.Equal(t, 2, env.backend.CallsCount(enums.OpSetMode))
}

// Tests backend ordinary messages hook.
func TestBusHook(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()

	env.backend.BusHook = func(m *bus.Message) bool {
		return bus.MsgFocusDone == m.Type
	}

	require.NoError(t, env.backend.MsgBus.Post(bus.NewFocusDoneMessage("", enums.FocusStatusFail)))
	require.NoError(t, env.backend.MsgBus.Post(bus.NewShakeRiskMessage("")))
	assert.Equal(t, enums.EvShakeRisk, waitEvent(t, env.events).Type)
}

// Tests picture saved handler and capture retry.
func TestPictureSaved(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	m := env.manager

	var calls int32
	m.SetPictureSavedHandler(func(filename string) bool {
		return 1 == atomic.AddInt32(&calls, 1)
	})

	require.NoError(t, m.SetMode(enums.ModeStill, nil))
	require.NoError(t, m.CaptureStill("a.jpg", nil))
	assert.Equal(t, 1, m.pending.ItemCount())

	require.NoError(t, env.backend.MsgBus.Post(bus.NewPictureSavedMessage("", "a.jpg")))
	e := waitEvent(t, env.events)
	assert.Equal(t, enums.EvPictureSaved, e.Type)
	assert.Equal(t, "a.jpg", e.Filename)
	waitFor(t, func() bool { return 2 == env.backend.CallsCount(enums.OpCaptureStill) })
	waitFor(t, func() bool { return 1 == m.pending.ItemCount() })

	require.NoError(t, env.backend.MsgBus.Post(bus.NewPictureSavedMessage("", "a.jpg")))
	waitEvent(t, env.events)
	waitFor(t, func() bool { return 0 == m.pending.ItemCount() })
	assert.Equal(t, 2, env.backend.CallsCount(enums.OpCaptureStill))

	require.NoError(t, env.backend.MsgBus.Post(bus.NewPictureSavedMessage("", "unknown.jpg")))
	assert.Equal(t, "unknown.jpg", waitEvent(t, env.events).Filename)
	assert.Contains(t, env.logger.Messages(), "Unknown picture saved")
}

// Tests expired pending captures sweep.
func TestPendingSweep(t *testing.T) {
	env := newTestEnv(t, fullCaps())
	defer env.manager.Close()
	m := env.manager

	m.pending.Set("old.jpg", "test", time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, m.pending.ItemCount())
	m.pending.DeleteExpired()
	assert.Equal(t, 0, m.pending.ItemCount())
}

// Tests that subscriber which stopped reading doesn't block the session.
func TestStalledSubscriber(t *testing.T) {
	defer leaktest.CheckTimeout(t, 2*time.Second)()

	log := mocks.FakeNewLogger(nil)
	fo := fanout.NewFanOut(&fanout.ConstructFanOut{Logger: log, Buffer: 1})
	_, _, err := fo.Subscribe("*")
	require.NoError(t, err)
	_, errorsCh, err := fo.Subscribe("internal-error")
	require.NoError(t, err)

	backend := mocks.FakeNewBackend(fullCaps())
	m := NewManager(&ConstructManager{Logger: log, FanOut: fo, Session: "stalled"})
	require.NoError(t, m.Attach(backend, nil))

	for ii := 0; ii < 3; ii++ {
		require.NoError(t, backend.MsgBus.Post(bus.NewShakeRiskMessage("")))
	}

	require.NoError(t, backend.MsgBus.Post(bus.NewErrorMessage("", errors.New("device lost"))))
	assert.Equal(t, enums.EvInternalError, waitEvent(t, errorsCh).Type)
	assert.True(t, backend.IsStopped())
	assert.Contains(t, log.Messages(), "Subscriber is too slow, dropping events")

	done := make(chan struct{})
	go func() {
		m.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close is blocked")
	}

	assert.True(t, backend.IsUnloaded())
}
