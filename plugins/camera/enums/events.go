package enums

// EventType describes application-level camera event.
type EventType int

const (
	// EvFocusDone describes finished autofocus run.
	EvFocusDone EventType = iota
	// EvPictureSaved describes stored picture.
	EvPictureSaved
	// EvCaptureStart describes started capture.
	EvCaptureStart
	// EvCaptureEnd describes finished capture.
	EvCaptureEnd
	// EvPictureGot describes available picture buffer.
	EvPictureGot
	// EvPreviewImage describes ready preview frame.
	EvPreviewImage
	// EvInternalError describes fatal backend error.
	EvInternalError
	// EvShakeRisk describes camera shake warning.
	EvShakeRisk
	// EvStateChanged describes backend pipeline state transition.
	EvStateChanged
)

var eventTypeNames = []string{"focus-done", "picture-saved", "capture-start", "capture-end", "picture-got", "preview-image", "internal-error", "shake-risk", "state-changed"}

// String returns enum name.
func (i EventType) String() string {
	return enumName(eventTypeNames, int(i))
}

// EventTypeString returns enum value by its name.
func EventTypeString(s string) (EventType, error) {
	v, err := enumValue(eventTypeNames, s)
	return EventType(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i EventType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *EventType) UnmarshalText(text []byte) error {
	v, err := EventTypeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}
