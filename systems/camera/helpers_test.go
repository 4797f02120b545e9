package camera

import (
	"testing"
	"time"

	"github.com/go-home-io/camera/mocks"
	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/systems/fanout"
	"github.com/stretchr/testify/require"
)

const allFeatures = enums.FeatureViewfinder | enums.FeatureFlash | enums.FeatureManualFocus |
	enums.FeatureAutoFocus | enums.FeatureMacro | enums.FeatureContinuousAutofocus |
	enums.FeatureManualExposure | enums.FeatureAutoExposure | enums.FeatureManualIso | enums.FeatureAutoIso |
	enums.FeatureManualWhiteBalance | enums.FeatureAutoWhiteBalance | enums.FeatureMetering |
	enums.FeatureAspectRatio | enums.FeatureQuality | enums.FeatureResolution | enums.FeatureOpticalZoom |
	enums.FeatureDigitalZoom | enums.FeatureAudio | enums.FeaturePreview

// Returns capabilities with every feature.
func fullCaps() *camera.Capabilities {
	return &camera.Capabilities{
		Features:           allFeatures,
		Modes:              enums.NewModeSet(enums.ModeStill, enums.ModeVideo),
		FlashModes:         enums.NewFlashModeSet(enums.FlashModeOff, enums.FlashModeOn, enums.FlashModeAuto),
		FocusModes:         enums.NewFocusModeSet(enums.FocusModeManual, enums.FocusModeAuto, enums.FocusModeContinuousAuto),
		FocusPoints:        enums.NewFocusPointsSet(enums.FocusPointsOneCentral, enums.FocusPointsFive),
		ExposureModes:      enums.NewExposureModeSet(enums.ExposureModeManual, enums.ExposureModeAuto, enums.ExposureModeNight),
		ExposureComp:       camera.Range{Min: -2, Max: 2},
		IsoModes:           enums.NewIsoModeSet(enums.IsoModeManual, enums.IsoModeAuto),
		IsoLevels:          camera.IntRange{Min: 100, Max: 3200},
		WhiteBalanceModes:  enums.NewWhiteBalanceModeSet(enums.WhiteBalanceModeManual, enums.WhiteBalanceModeAuto, enums.WhiteBalanceModeCloudy),
		WhiteBalanceLevels: camera.IntRange{Min: 2000, Max: 9000},
		MeteringModes:      enums.NewMeteringModeSet(enums.MeteringModeAverage, enums.MeteringModeSpot),
		AspectRatios:       enums.NewAspectRatioSet(enums.AspectRatio4x3, enums.AspectRatio16x9),
		Resolutions:        enums.NewResolutionSet(enums.ResolutionLow, enums.ResolutionHigh),
		Qualities:          enums.NewQualitySet(enums.QualityLow, enums.QualityHigh),
		AudioStates:        enums.NewAudioSet(enums.AudioOn, enums.AudioOff),
		PreviewModes:       enums.NewPreviewModeSet(enums.PreviewModeEnabled, enums.PreviewModeDisabled),
		Zoom:               camera.ZoomLimits{Max: 10, MaxMacro: 2, MaxOptical: 3, MaxOpticalMacro: 1.5},
	}
}

type testEnv struct {
	manager *Manager
	backend *mocks.FakeBackend
	logger  *mocks.FakeLogger
	events  chan *common.Event
}

// Constructs manager with attached fake backend.
func newTestEnv(t *testing.T, caps *camera.Capabilities) *testEnv {
	env := &testEnv{
		logger:  mocks.FakeNewLogger(nil),
		backend: mocks.FakeNewBackend(caps),
	}

	fo := fanout.NewFanOut(&fanout.ConstructFanOut{Logger: env.logger, Buffer: 100})
	_, env.events, _ = fo.Subscribe("*")

	env.manager = NewManager(&ConstructManager{
		Logger:  env.logger,
		FanOut:  fo,
		Session: "test",
	})

	require.NoError(t, env.manager.Attach(env.backend, nil))
	return env
}

// Returns next event or fails.
func waitEvent(t *testing.T, ch chan *common.Event) *common.Event {
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("event was not received")
	}

	return nil
}

// Checks that there are no events.
func noEvents(t *testing.T, ch chan *common.Event) {
	select {
	case e := <-ch:
		t.Fatalf("unexpected event %s", e.Type)
	case <-time.After(100 * time.Millisecond):
	}
}

// Polls condition until timeout.
func waitFor(t *testing.T, cond func() bool) {
	for ii := 0; ii < 200; ii++ {
		if cond() {
			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("condition was not met")
}
