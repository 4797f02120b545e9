package simulator

// ErrNotPlaying defines capture request while pipeline is down.
type ErrNotPlaying struct {
}

// Error formats output.
func (*ErrNotPlaying) Error() string {
	return "pipeline is not playing"
}

// ErrAlreadyRecording defines duplicated recording request.
type ErrAlreadyRecording struct {
}

// Error formats output.
func (*ErrAlreadyRecording) Error() string {
	return "already recording"
}

// ErrNotRecording defines recording control without recording.
type ErrNotRecording struct {
}

// Error formats output.
func (*ErrNotRecording) Error() string {
	return "not recording"
}
