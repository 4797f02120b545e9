package enums

// PipelineState describes backend pipeline state.
type PipelineState int

const (
	// PipelineStateNull describes stopped pipeline.
	PipelineStateNull PipelineState = iota
	// PipelineStateReady describes allocated pipeline.
	PipelineStateReady
	// PipelineStatePaused describes pre-rolled pipeline.
	PipelineStatePaused
	// PipelineStatePlaying describes running pipeline.
	PipelineStatePlaying
)

var pipelineStateNames = []string{"null", "ready", "paused", "playing"}

// String returns enum name.
func (i PipelineState) String() string {
	return enumName(pipelineStateNames, int(i))
}

// PipelineStateString returns enum value by its name.
func PipelineStateString(s string) (PipelineState, error) {
	v, err := enumValue(pipelineStateNames, s)
	return PipelineState(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i PipelineState) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *PipelineState) UnmarshalText(text []byte) error {
	v, err := PipelineStateString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}
