package server

import "fmt"

// ErrUnknownSetting defines unknown setting error.
type ErrUnknownSetting struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownSetting) Error() string {
	return fmt.Sprintf("setting %s is unknown", e.Name)
}

// ErrUnknownAction defines unknown video action error.
type ErrUnknownAction struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownAction) Error() string {
	return fmt.Sprintf("action %s is unknown", e.Name)
}

// ErrBadRequest defines generic request error.
type ErrBadRequest struct {
}

// Error formats output.
func (e *ErrBadRequest) Error() string {
	return "bad request"
}

// ErrNoPreview defines missing preview frame error.
type ErrNoPreview struct {
}

// Error formats output.
func (e *ErrNoPreview) Error() string {
	return "preview frame is not available"
}
