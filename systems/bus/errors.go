package bus

// ErrUnknownType defines an unknown message type error.
type ErrUnknownType struct {
}

// Error formats output.
func (*ErrUnknownType) Error() string {
	return "unknown message type"
}

// ErrCorruptedMessage defines an empty message error.
type ErrCorruptedMessage struct {
}

// Error formats output.
func (*ErrCorruptedMessage) Error() string {
	return "corrupted bus message"
}

// ErrBusClosed defines usage of the closed bus.
type ErrBusClosed struct {
}

// Error formats output.
func (*ErrBusClosed) Error() string {
	return "bus is closed"
}
