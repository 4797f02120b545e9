// Package common contains shared data available for backends and internal systems.
package common

import (
	"image"

	"github.com/go-home-io/camera/plugins/camera/enums"
)

// ILoggerProvider defines logger provider which will be passed to every backend.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
	Flush()
}

// PreviewFrame contains a decoded preview image.
// Receiver of the event owns the image.
type PreviewFrame struct {
	Image     image.Image
	Hash      uint64
	Duplicate bool
}

// Event is an application-level camera event.
type Event struct {
	Type        enums.EventType
	Session     string
	Time        int64
	Filename    string
	FocusStatus enums.FocusStatus
	OldState    enums.PipelineState
	NewState    enums.PipelineState
	Frame       *PreviewFrame
	Err         error
}
