package settings

// ErrDuplicatedSection defines config section defined twice error.
type ErrDuplicatedSection struct {
	System string
}

// Error formats output.
func (e *ErrDuplicatedSection) Error() string {
	return "duplicated config section " + e.System
}

// ErrInvalidSection defines config section validation error.
type ErrInvalidSection struct {
	System string
}

// Error formats output.
func (e *ErrInvalidSection) Error() string {
	return "invalid config section " + e.System
}
