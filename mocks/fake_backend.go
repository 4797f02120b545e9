//+build !release

package mocks

import (
	"sync"

	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
)

// FakeBareBackend is a fake backend able only to switch modes and capture.
type FakeBareBackend struct {
	sync.Mutex

	Name    string
	InitErr error
	Fail    map[enums.Operation]error
	MsgBus  *FakeBus

	calls    []enums.Operation
	lastData interface{}
	lastCur  *camera.State
	unloaded bool
	stopped  bool
}

// Records invocation and returns configured failure.
func (b *FakeBareBackend) record(op enums.Operation, current *camera.State, data interface{}) error {
	b.Lock()
	defer b.Unlock()

	b.calls = append(b.calls, op)
	b.lastCur = current
	b.lastData = data
	return b.Fail[op]
}

// Init initializes backend.
func (b *FakeBareBackend) Init(*camera.InitDataBackend) error {
	return b.InitErr
}

// Unload releases backend.
func (b *FakeBareBackend) Unload() {
	b.Lock()
	defer b.Unlock()
	b.unloaded = true
}

// GetName returns backend name.
func (b *FakeBareBackend) GetName() string {
	return b.Name
}

// Bus returns backend bus.
func (b *FakeBareBackend) Bus() bus.IMessageBus {
	if nil == b.MsgBus {
		return nil
	}

	return b.MsgBus
}

// Stop stops the pipeline.
func (b *FakeBareBackend) Stop() error {
	b.Lock()
	defer b.Unlock()
	b.stopped = true
	return nil
}

// SetMode records mode change.
func (b *FakeBareBackend) SetMode(current *camera.State, mode enums.Mode, data interface{}) error {
	return b.record(enums.OpSetMode, current, data)
}

// CaptureStill records still capture.
func (b *FakeBareBackend) CaptureStill(current *camera.State, filename string, data interface{}) error {
	return b.record(enums.OpCaptureStill, current, data)
}

// StartVideo records recording start.
func (b *FakeBareBackend) StartVideo(current *camera.State, filename string, data interface{}) error {
	return b.record(enums.OpStartVideo, current, data)
}

// PauseVideo records recording pause.
func (b *FakeBareBackend) PauseVideo(current *camera.State, resume bool, data interface{}) error {
	return b.record(enums.OpPauseVideo, current, data)
}

// FinishVideo records recording finish.
func (b *FakeBareBackend) FinishVideo(current *camera.State, data interface{}) error {
	return b.record(enums.OpFinishVideo, current, data)
}

// Calls returns recorded operations.
func (b *FakeBareBackend) Calls() []enums.Operation {
	b.Lock()
	defer b.Unlock()
	return append([]enums.Operation{}, b.calls...)
}

// CallsCount returns number of recorded invocations of the operation.
func (b *FakeBareBackend) CallsCount(op enums.Operation) int {
	cnt := 0
	for _, v := range b.Calls() {
		if v == op {
			cnt++
		}
	}

	return cnt
}

// LastData returns data passed to the latest operation.
func (b *FakeBareBackend) LastData() interface{} {
	b.Lock()
	defer b.Unlock()
	return b.lastData
}

// LastState returns configuration passed to the latest operation.
func (b *FakeBareBackend) LastState() *camera.State {
	b.Lock()
	defer b.Unlock()
	return b.lastCur
}

// IsUnloaded returns whether backend was unloaded.
func (b *FakeBareBackend) IsUnloaded() bool {
	b.Lock()
	defer b.Unlock()
	return b.unloaded
}

// IsStopped returns whether backend was stopped.
func (b *FakeBareBackend) IsStopped() bool {
	b.Lock()
	defer b.Unlock()
	return b.stopped
}

// FakeBackend is a fake backend implementing every operation.
type FakeBackend struct {
	FakeBareBackend

	Caps     *camera.Capabilities
	Inputs   []*camera.InputCaps
	Surface  interface{}
	BusHook  func(*bus.Message) bool
	SyncHook func(*bus.Message) bool
}

// Photography returns advertised capabilities.
func (b *FakeBackend) Photography() *camera.Capabilities {
	return b.Caps
}

// InputCaps returns advertised source formats.
func (b *FakeBackend) InputCaps() []*camera.InputCaps {
	return b.Inputs
}

// ViewfinderSurface returns viewfinder surface.
func (b *FakeBackend) ViewfinderSurface() interface{} {
	return b.Surface
}

// SetFlashMode records flash mode change.
func (b *FakeBackend) SetFlashMode(current *camera.State, mode enums.FlashMode, data interface{}) error {
	return b.record(enums.OpSetFlashMode, current, data)
}

// SetFocusMode records focus mode change.
func (b *FakeBackend) SetFocusMode(current *camera.State, mode enums.FocusMode, macroEnabled bool,
	data interface{}) error {
	return b.record(enums.OpSetFocusMode, current, data)
}

// SetFocusRegionPattern records focus region change.
func (b *FakeBackend) SetFocusRegionPattern(current *camera.State, points enums.FocusPoints, activePoints uint64,
	data interface{}) error {
	return b.record(enums.OpSetFocusRegion, current, data)
}

// SetExposureMode records exposure mode change.
func (b *FakeBackend) SetExposureMode(current *camera.State, mode enums.ExposureMode, data interface{}) error {
	return b.record(enums.OpSetExposureMode, current, data)
}

// SetExposureComp records exposure compensation change.
func (b *FakeBackend) SetExposureComp(current *camera.State, comp float64, data interface{}) error {
	return b.record(enums.OpSetExposureComp, current, data)
}

// SetIsoSensitivityMode records ISO change.
func (b *FakeBackend) SetIsoSensitivityMode(current *camera.State, mode enums.IsoMode, level int,
	data interface{}) error {
	return b.record(enums.OpSetIsoMode, current, data)
}

// SetWhiteBalanceMode records white balance change.
func (b *FakeBackend) SetWhiteBalanceMode(current *camera.State, mode enums.WhiteBalanceMode, level int,
	data interface{}) error {
	return b.record(enums.OpSetWhiteBalanceMode, current, data)
}

// SetMeteringMode records metering change.
func (b *FakeBackend) SetMeteringMode(current *camera.State, mode enums.MeteringMode, data interface{}) error {
	return b.record(enums.OpSetMeteringMode, current, data)
}

// SetAspectRatioResolution records picture format change.
func (b *FakeBackend) SetAspectRatioResolution(current *camera.State, ratio enums.AspectRatio,
	resolution enums.Resolution, data interface{}) error {
	return b.record(enums.OpSetAspectRatioResolution, current, data)
}

// SetQuality records quality change.
func (b *FakeBackend) SetQuality(current *camera.State, quality enums.Quality, data interface{}) error {
	return b.record(enums.OpSetQuality, current, data)
}

// SetLocks records locks change.
func (b *FakeBackend) SetLocks(current *camera.State, locks enums.Lock, data interface{}) error {
	return b.record(enums.OpSetLocks, current, data)
}

// SetZoom records zoom change.
func (b *FakeBackend) SetZoom(current *camera.State, zoom float64, data interface{}) error {
	return b.record(enums.OpSetZoom, current, data)
}

// SetAudio records audio change.
func (b *FakeBackend) SetAudio(current *camera.State, audio enums.Audio, data interface{}) error {
	return b.record(enums.OpSetAudio, current, data)
}

// SetPreviewMode records preview mode change.
func (b *FakeBackend) SetPreviewMode(current *camera.State, mode enums.PreviewMode, data interface{}) error {
	return b.record(enums.OpSetPreviewMode, current, data)
}

// HandleBusMessage invokes ordinary messages hook.
func (b *FakeBackend) HandleBusMessage(msg *bus.Message) bool {
	if nil == b.BusHook {
		return false
	}

	return b.BusHook(msg)
}

// HandleSyncBusMessage invokes sync messages hook.
func (b *FakeBackend) HandleSyncBusMessage(msg *bus.Message) bool {
	if nil == b.SyncHook {
		return false
	}

	return b.SyncHook(msg)
}

// FakeNewBareBackend creates a fake backend with mode and capture operations only.
func FakeNewBareBackend() *FakeBareBackend {
	return &FakeBareBackend{
		Name:   "bare",
		Fail:   make(map[enums.Operation]error),
		MsgBus: FakeNewBus(nil),
	}
}

// FakeNewBackend creates a fake backend advertising provided capabilities.
func FakeNewBackend(caps *camera.Capabilities) *FakeBackend {
	return &FakeBackend{
		FakeBareBackend: FakeBareBackend{
			Name:   "fake",
			Fail:   make(map[enums.Operation]error),
			MsgBus: FakeNewBus(nil),
		},
		Caps:    caps,
		Surface: struct{}{},
	}
}
