// Package simulator contains simulated camera backend.
package simulator

import (
	"image"
	"image/color"
	"path/filepath"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-home-io/camera/plugins/bus"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/providers"
	sysbus "github.com/go-home-io/camera/systems/bus"
)

const (
	// Backend name.
	backendName = "simulator"
	// Default preview frame width.
	defaultWidth = 160
	// Default preview frame height.
	defaultHeight = 120
	// Default video preview frames interval.
	defaultFrameInterval = 200 * time.Millisecond
)

// ConstructSimulator has data required for a new simulated backend.
type ConstructSimulator struct {
	Capabilities  *camera.Capabilities
	Width         int
	Height        int
	FrameInterval time.Duration
	OutputDir     string
}

// Backend is a simulated camera.
// Capture lifecycle is reported from a separate goroutine, same way
// as a real media pipeline does.
type Backend struct {
	sync.Mutex

	logger   common.ILoggerProvider
	bus      providers.IBusProvider
	caps     *camera.Capabilities
	surface  *image.NRGBA
	state    enums.PipelineState
	applied  *camera.State
	wg       sync.WaitGroup
	frames   int
	video    string
	paused   bool
	stopRec  chan struct{}
	width    int
	height   int
	interval time.Duration
	output   string
}

// NewBackend constructs a new simulated backend.
func NewBackend(ctor *ConstructSimulator) *Backend {
	b := &Backend{
		caps:     ctor.Capabilities,
		width:    ctor.Width,
		height:   ctor.Height,
		interval: ctor.FrameInterval,
		output:   ctor.OutputDir,
		applied:  camera.NewState(),
	}

	if nil == b.caps {
		b.caps = DefaultCapabilities()
	}

	if b.width <= 0 || b.height <= 0 {
		b.width, b.height = defaultWidth, defaultHeight
	}

	if b.interval <= 0 {
		b.interval = defaultFrameInterval
	}

	return b
}

// DefaultCapabilities returns capabilities advertised by the simulator.
func DefaultCapabilities() *camera.Capabilities {
	return &camera.Capabilities{
		Features: enums.FeatureViewfinder | enums.FeatureFlash | enums.FeatureManualFocus |
			enums.FeatureAutoFocus | enums.FeatureMacro | enums.FeatureContinuousAutofocus |
			enums.FeatureManualExposure | enums.FeatureAutoExposure | enums.FeatureManualIso |
			enums.FeatureAutoIso | enums.FeatureManualWhiteBalance | enums.FeatureAutoWhiteBalance |
			enums.FeatureMetering | enums.FeatureQuality | enums.FeatureOpticalZoom |
			enums.FeatureDigitalZoom | enums.FeatureAudio | enums.FeaturePreview,
		Modes: enums.NewModeSet(enums.ModeStill, enums.ModeVideo),
		FlashModes: enums.NewFlashModeSet(enums.FlashModeOff, enums.FlashModeOn, enums.FlashModeAuto,
			enums.FlashModeRedEye),
		FocusModes: enums.NewFocusModeSet(enums.FocusModeManual, enums.FocusModeAuto, enums.FocusModeFace,
			enums.FocusModeContinuousAuto),
		FocusPoints:   enums.NewFocusPointsSet(enums.FocusPointsOneCentral, enums.FocusPointsFive),
		ExposureModes: enums.NewExposureModeSet(enums.ExposureModeManual, enums.ExposureModeAuto, enums.ExposureModeNight),
		ExposureComp:  camera.Range{Min: -2, Max: 2},
		IsoModes:      enums.NewIsoModeSet(enums.IsoModeManual, enums.IsoModeAuto),
		IsoLevels:     camera.IntRange{Min: 100, Max: 1600},
		WhiteBalanceModes: enums.NewWhiteBalanceModeSet(enums.WhiteBalanceModeManual, enums.WhiteBalanceModeAuto,
			enums.WhiteBalanceModeSunlight, enums.WhiteBalanceModeCloudy),
		WhiteBalanceLevels: camera.IntRange{Min: 2500, Max: 7500},
		MeteringModes:      enums.NewMeteringModeSet(enums.MeteringModeAverage, enums.MeteringModeSpot),
		Qualities:          enums.NewQualitySet(enums.QualityLow, enums.QualityMedium, enums.QualityHigh),
		AudioStates:        enums.NewAudioSet(enums.AudioOn, enums.AudioOff),
		PreviewModes:       enums.NewPreviewModeSet(enums.PreviewModeEnabled, enums.PreviewModeDisabled),
		Zoom:               camera.ZoomLimits{Max: 8, MaxMacro: 2, MaxOptical: 4, MaxOpticalMacro: 2},
	}
}

// Init creates backend bus.
func (b *Backend) Init(data *camera.InitDataBackend) error {
	b.Lock()
	defer b.Unlock()

	b.logger = data.Logger
	b.bus = sysbus.NewMessageBus(&sysbus.ConstructBus{
		Logger: data.Logger,
		Source: backendName,
	})
	b.surface = image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	b.state = enums.PipelineStateReady
	return nil
}

// Unload waits for pending notifications and closes the bus.
func (b *Backend) Unload() {
	b.Lock()
	b.stopRecording()
	b.Unlock()

	b.wg.Wait()

	b.Lock()
	defer b.Unlock()
	if nil != b.bus {
		b.bus.Close()
	}

	b.state = enums.PipelineStateNull
}

// GetName returns backend name.
func (b *Backend) GetName() string {
	return backendName
}

// Bus returns backend message bus.
func (b *Backend) Bus() bus.IMessageBus {
	b.Lock()
	defer b.Unlock()

	if nil == b.bus {
		return nil
	}

	return b.bus
}

// Stop brings pipeline down.
func (b *Backend) Stop() error {
	b.Lock()
	defer b.Unlock()

	b.stopRecording()
	b.changeState(enums.PipelineStateNull)
	return nil
}

// InputCaps returns source formats.
func (b *Backend) InputCaps() []*camera.InputCaps {
	return []*camera.InputCaps{
		{MediaType: "video/x-raw", Width: 640, Height: 480, FrameRate: 30},
		{MediaType: "video/x-raw", Width: 1280, Height: 720, FrameRate: 30},
		{MediaType: "video/x-raw", Width: 1920, Height: 1080, FrameRate: 30},
		{MediaType: "image/jpeg", Width: 2048, Height: 1536, FrameRate: 15},
		{MediaType: "image/jpeg", Width: 3000, Height: 2000, FrameRate: 5},
	}
}

// Photography returns advertised capabilities.
func (b *Backend) Photography() *camera.Capabilities {
	return b.caps
}

// ViewfinderSurface returns image frames are rendered into.
func (b *Backend) ViewfinderSurface() interface{} {
	b.Lock()
	defer b.Unlock()

	if nil == b.surface {
		return nil
	}

	return b.surface
}

// Applied returns last applied configuration.
func (b *Backend) Applied() *camera.State {
	b.Lock()
	defer b.Unlock()
	return b.applied.Copy()
}

// PipelineState returns current pipeline state.
func (b *Backend) PipelineState() enums.PipelineState {
	b.Lock()
	defer b.Unlock()
	return b.state
}

// Remembers applied configuration.
func (b *Backend) apply(op enums.Operation, current *camera.State, update func(*camera.State)) {
	b.Lock()
	defer b.Unlock()

	b.applied = current.Copy()
	update(b.applied)
	b.logger.Debug("Applied setting", common.LogOperationToken, op.String())
}

// Posts message from a separate goroutine.
func (b *Backend) post(direct bool, messages ...*bus.Message) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for _, msg := range messages {
			var err error
			if direct {
				err = b.bus.PostSync(msg)
			} else {
				err = b.bus.Post(msg)
			}

			if err != nil {
				b.logger.Warn("Failed to post message", common.LogMessageToken, msg.Type.String(),
					common.LogErrorToken, err.Error())
			}
		}
	}()
}

// Changes pipeline state and notifies about it.
// Should be invoked under the lock.
func (b *Backend) changeState(state enums.PipelineState) {
	if state == b.state {
		return
	}

	b.post(false, bus.NewStateChangedMessage("", b.state, state))
	b.state = state
}

// Renders next preview frame into the viewfinder surface.
// Should be invoked under the lock.
func (b *Backend) render() image.Image {
	b.frames++
	shade := uint8(b.frames * 37 % 256)
	img := imaging.New(b.width, b.height, color.NRGBA{R: shade, G: 255 - shade, B: 128, A: 255})
	half := imaging.New(b.width/2, b.height/2, color.NRGBA{R: 255 - shade, G: shade, B: 0, A: 255})
	img = imaging.Paste(img, half, image.Pt(b.frames%2*b.width/2, 0))

	if nil != b.surface {
		copy(b.surface.Pix, img.Pix)
	}

	return img
}

// Saves rendered picture if output folder is configured.
func (b *Backend) save(img image.Image, filename string) {
	if "" == b.output {
		return
	}

	path := filepath.Join(b.output, filepath.Base(filename))
	if err := imaging.Save(img, path); err != nil {
		b.logger.Error("Failed to save picture", err, common.LogFileToken, path)
	}
}
