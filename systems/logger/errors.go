package logger

// ErrUnknownProvider defines unknown logger provider error.
type ErrUnknownProvider struct {
	Provider string
}

// Error formats output.
func (e *ErrUnknownProvider) Error() string {
	return "unknown logger provider " + e.Provider
}
