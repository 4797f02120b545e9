package bus

import (
	"testing"
	"time"

	"github.com/go-home-io/camera/mocks"
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *provider {
	return NewMessageBus(&ConstructBus{Logger: mocks.FakeNewLogger(nil), Source: "test"}).(*provider)
}

// Tests ordinary messages delivery.
func TestPost(t *testing.T) {
	b := newTestBus()
	q1 := make(chan *bus.Message, 2)
	q2 := make(chan *bus.Message, 2)
	_, err := b.AddWatch(q1)
	require.NoError(t, err)
	id2, err := b.AddWatch(q2)
	require.NoError(t, err)

	require.NoError(t, b.Post(bus.NewFocusDoneMessage("", enums.FocusStatusSuccess)))
	m1 := <-q1
	m2 := <-q2
	assert.Equal(t, bus.MsgFocusDone, m1.Type)
	assert.Equal(t, "test", m1.Source)
	assert.NotZero(t, m1.SendTime)
	assert.Equal(t, m1, m2)

	b.RemoveWatch(id2)
	require.NoError(t, b.Post(bus.NewShakeRiskMessage("")))
	assert.Equal(t, bus.MsgShakeRisk, (<-q1).Type)
	assert.Equal(t, 0, len(q2))
}

// Tests that sync handlers could consume messages.
func TestPostSync(t *testing.T) {
	b := newTestBus()
	q := make(chan *bus.Message, 2)
	_, err := b.AddWatch(q)
	require.NoError(t, err)

	var handled []bus.MessageType
	_, err = b.SetSyncHandler(func(m *bus.Message) bool {
		handled = append(handled, m.Type)
		return m.Type.IsLifecycle()
	})
	require.NoError(t, err)

	require.NoError(t, b.PostSync(bus.NewCaptureStartMessage("")))
	require.NoError(t, b.PostSync(bus.NewWarningMessage("", assert.AnError)))

	assert.Equal(t, []bus.MessageType{bus.MsgCaptureStart, bus.MsgWarning}, handled)
	require.Equal(t, 1, len(q))
	assert.Equal(t, bus.MsgWarning, (<-q).Type)
}

// Tests invalid messages.
func TestWrongMessages(t *testing.T) {
	b := newTestBus()
	assert.IsType(t, &ErrCorruptedMessage{}, b.Post(nil))
	assert.IsType(t, &ErrUnknownType{}, b.Post(&bus.Message{Type: bus.MessageType(100)}))
}

// Tests that removed watch doesn't block publisher.
func TestRemoveBlockedWatch(t *testing.T) {
	b := newTestBus()
	q := make(chan *bus.Message)
	id, err := b.AddWatch(q)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		//noinspection GoUnhandledErrorResult
		b.Post(bus.NewShakeRiskMessage("")) // nolint: errcheck
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	b.RemoveWatch(id)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher is blocked")
	}
}

// Tests closed bus.
func TestClose(t *testing.T) {
	b := newTestBus()
	b.Close()
	b.Close()

	_, err := b.AddWatch(make(chan *bus.Message))
	assert.IsType(t, &ErrBusClosed{}, err)
	assert.IsType(t, &ErrBusClosed{}, b.Post(bus.NewShakeRiskMessage("")))
}
