package fanout

// ErrWrongPattern defines invalid subscription pattern error.
type ErrWrongPattern struct {
	Pattern string
}

// Error formats output.
func (e *ErrWrongPattern) Error() string {
	return "wrong subscription pattern " + e.Pattern
}
