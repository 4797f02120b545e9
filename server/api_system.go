package server

import "net/http"

// Performs quick check whether system is OK.
func (s *CameraServer) ping(writer http.ResponseWriter, _ *http.Request) {
	respondOk(writer)
}
