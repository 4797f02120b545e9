package preview

// ErrNoFrame defines absent preview frame error.
type ErrNoFrame struct {
}

// Error formats output.
func (*ErrNoFrame) Error() string {
	return "no preview frame"
}
