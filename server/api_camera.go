package server

import (
	"net/http"

	"github.com/go-home-io/camera/plugins/camera"
	"github.com/go-home-io/camera/plugins/common"
	"github.com/gorilla/mux"
)

// Capabilities response.
type capabilitiesResponse struct {
	Session            string            `json:"session"`
	Features           []string          `json:"features"`
	Operations         []string          `json:"operations"`
	Modes              []string          `json:"modes"`
	FlashModes         []string          `json:"flashModes"`
	FocusModes         []string          `json:"focusModes"`
	FocusPoints        []string          `json:"focusPoints"`
	ExposureModes      []string          `json:"exposureModes"`
	ExposureComp       camera.Range      `json:"exposureComp"`
	IsoModes           []string          `json:"isoModes"`
	IsoLevels          camera.IntRange   `json:"isoLevels"`
	WhiteBalanceModes  []string          `json:"whiteBalanceModes"`
	WhiteBalanceLevels camera.IntRange   `json:"whiteBalanceLevels"`
	MeteringModes      []string          `json:"meteringModes"`
	AspectRatios       []string          `json:"aspectRatios"`
	Resolutions        []string          `json:"resolutions"`
	Qualities          []string          `json:"qualities"`
	Audio              []string          `json:"audio"`
	PreviewModes       []string          `json:"previewModes"`
	Zoom               camera.ZoomLimits `json:"zoom"`
	Formats            []*camera.Format  `json:"formats"`
}

// State response.
type stateResponse struct {
	Session   string        `json:"session"`
	Capturing bool          `json:"capturing"`
	State     *camera.State `json:"state"`
}

// Capture request.
type captureRequest struct {
	Filename string `json:"filename" validate:"required,max=255,filename"`
}

// Responds with capabilities of the attached backend.
func (s *CameraServer) getCapabilities(writer http.ResponseWriter, _ *http.Request) {
	caps, err := s.camera.Capabilities()
	if err != nil {
		respondError(writer, err)
		return
	}

	respond(writer, &capabilitiesResponse{
		Session:            s.camera.Session(),
		Features:           caps.Features.Strings(),
		Operations:         caps.Operations.Strings(),
		Modes:              caps.Modes.Strings(),
		FlashModes:         caps.FlashModes.Strings(),
		FocusModes:         caps.FocusModes.Strings(),
		FocusPoints:        caps.FocusPoints.Strings(),
		ExposureModes:      caps.ExposureModes.Strings(),
		ExposureComp:       caps.ExposureComp,
		IsoModes:           caps.IsoModes.Strings(),
		IsoLevels:          caps.IsoLevels,
		WhiteBalanceModes:  caps.WhiteBalanceModes.Strings(),
		WhiteBalanceLevels: caps.WhiteBalanceLevels,
		MeteringModes:      caps.MeteringModes.Strings(),
		AspectRatios:       caps.AspectRatios.Strings(),
		Resolutions:        caps.Resolutions.Strings(),
		Qualities:          caps.Qualities.Strings(),
		Audio:              caps.AudioStates.Strings(),
		PreviewModes:       caps.PreviewModes.Strings(),
		Zoom:               caps.Zoom,
		Formats:            caps.Formats,
	})
}

// Responds with current configuration.
func (s *CameraServer) getState(writer http.ResponseWriter, _ *http.Request) {
	state, err := s.camera.State()
	if err != nil {
		respondError(writer, err)
		return
	}

	respond(writer, &stateResponse{
		Session:   s.camera.Session(),
		Capturing: s.camera.IsCapturing(),
		State:     state,
	})
}

// Applies a single setting.
func (s *CameraServer) putSetting(writer http.ResponseWriter, request *http.Request) {
	name := mux.Vars(request)[string(urlSetting)]
	apply, ok := settingSetters[name]
	if !ok {
		respondError(writer, &ErrUnknownSetting{Name: name})
		return
	}

	payload := camera.NewState()
	if err := s.readPayload(request, payload); err != nil {
		respondError(writer, err)
		return
	}

	err := apply(s.camera, payload)
	if err != nil {
		s.Logger.Warn("Failed to apply setting", common.LogSystemToken, logSystem,
			common.LogNameToken, name, common.LogErrorToken, err.Error())
	}

	respondOkError(writer, err)
}

// Requests still capture.
func (s *CameraServer) captureStill(writer http.ResponseWriter, request *http.Request) {
	payload := &captureRequest{}
	if err := s.readPayload(request, payload); err != nil {
		respondError(writer, err)
		return
	}

	respondOkError(writer, s.camera.CaptureStill(payload.Filename, nil))
}

// Controls video recording.
func (s *CameraServer) videoAction(writer http.ResponseWriter, request *http.Request) {
	action := mux.Vars(request)[string(urlAction)]
	var err error
	switch action {
	case "start":
		payload := &captureRequest{}
		if err = s.readPayload(request, payload); err == nil {
			err = s.camera.StartRecording(payload.Filename, nil)
		}
	case "pause":
		err = s.camera.PauseRecording(false, nil)
	case "resume":
		err = s.camera.PauseRecording(true, nil)
	case "finish":
		err = s.camera.FinishRecording(nil)
	default:
		err = &ErrUnknownAction{Name: action}
	}

	respondOkError(writer, err)
}

// Responds with the latest preview frame.
func (s *CameraServer) getPreview(writer http.ResponseWriter, _ *http.Request) {
	if nil == s.preview {
		respondError(writer, &ErrNoPreview{})
		return
	}

	frame := s.preview.Last()
	if nil == frame {
		respondError(writer, &ErrNoPreview{})
		return
	}

	data, err := s.preview.Encode(frame)
	if err != nil {
		respondError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", "image/jpeg")
	writer.WriteHeader(http.StatusOK)
	writer.Write(data) // nolint: errcheck
}
