package enums

// FocusStatus describes result of the autofocus run.
type FocusStatus int

const (
	// FocusStatusNone describes unknown status.
	FocusStatusNone FocusStatus = iota
	// FocusStatusRunning describes autofocus in progress.
	FocusStatusRunning
	// FocusStatusSuccess describes acquired focus.
	FocusStatusSuccess
	// FocusStatusFail describes failed focus.
	FocusStatusFail
)

var focusStatusNames = []string{"none", "running", "success", "fail"}

// String returns enum name.
func (i FocusStatus) String() string {
	return enumName(focusStatusNames, int(i))
}

// FocusStatusString returns enum value by its name.
func FocusStatusString(s string) (FocusStatus, error) {
	v, err := enumValue(focusStatusNames, s)
	return FocusStatus(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i FocusStatus) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *FocusStatus) UnmarshalText(text []byte) error {
	v, err := FocusStatusString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}
