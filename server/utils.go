package server

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/go-home-io/camera/plugins/common"
	"github.com/go-home-io/camera/systems/camera"
)

// Error response payload.
type errorResponse struct {
	Status  string `json:"status"`
	Problem string `json:"problem"`
	Kind    string `json:"kind,omitempty"`
}

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, `{ "status": "OK" }`) // nolint: errcheck
}

// Generic API respond.
func respond(writer http.ResponseWriter, data interface{}) {
	d, err := json.Marshal(data)
	if err != nil {
		respondError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(d) // nolint: errcheck
}

// Validates whether error is not null and responds different status
// depending on it.
func respondOkError(writer http.ResponseWriter, err error) {
	if err != nil {
		respondError(writer, err)
	} else {
		respondOk(writer)
	}
}

// Error API response with status derived from the error.
func respondError(writer http.ResponseWriter, err error) {
	resp := &errorResponse{
		Status:  "ERROR",
		Problem: err.Error(),
	}

	if kind := camera.KindOf(err); camera.KindNone != kind {
		resp.Kind = kind.String()
	}

	d, _ := json.Marshal(resp)
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusOf(err))
	writer.Write(d) // nolint: errcheck
}

// Maps error into HTTP status.
func statusOf(err error) int {
	switch err.(type) {
	case *ErrBadRequest, *ErrUnknownAction:
		return http.StatusBadRequest
	case *ErrUnknownSetting, *ErrNoPreview:
		return http.StatusNotFound
	}

	switch camera.KindOf(err) {
	case camera.KindNone:
		return http.StatusInternalServerError
	case camera.KindBackendMissing:
		return http.StatusServiceUnavailable
	case camera.KindInvalidMode, camera.KindInvalidFocusMode, camera.KindAutofocusLocked,
		camera.KindLockNotPossible:
		return http.StatusConflict
	case camera.KindFailed:
		return http.StatusInternalServerError
	}

	return http.StatusUnprocessableEntity
}

// Reads JSON payload and validates it.
func (s *CameraServer) readPayload(request *http.Request, payload interface{}) error {
	data, err := ioutil.ReadAll(io.LimitReader(request.Body, maxBodySize))
	if err != nil {
		return &ErrBadRequest{}
	}

	if err := json.Unmarshal(data, payload); err != nil {
		s.Logger.Warn("Failed to unmarshal request", common.LogSystemToken, logSystem,
			common.LogURLToken, request.RequestURI, common.LogErrorToken, err.Error())
		return &ErrBadRequest{}
	}

	if nil != s.validator && !s.validator.Validate(payload) {
		return &ErrBadRequest{}
	}

	return nil
}

// Logger middleware for the API.
func (s *CameraServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogURLToken, r.RequestURI, common.LogSystemToken, logSystem)
		next.ServeHTTP(w, r)
	})
}

// Adapts system logger to the recovery handler.
type recoveryLogger struct {
	logger common.ILoggerProvider
}

// Println logs recovered panic.
func (l *recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("Recovered from panic", fmt.Errorf("%v", fmt.Sprint(v...)),
		common.LogSystemToken, logSystem)
}
