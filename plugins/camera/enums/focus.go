package enums

// FocusMode describes focusing behaviour.
type FocusMode int

const (
	// FocusModeNone describes unset focus mode.
	FocusModeNone FocusMode = iota
	// FocusModeManual describes manual focus.
	FocusModeManual
	// FocusModeAuto describes single-shot autofocus.
	FocusModeAuto
	// FocusModeFace describes face-detection autofocus.
	FocusModeFace
	// FocusModeSmile describes smile-detection autofocus.
	FocusModeSmile
	// FocusModeCentroid describes centroid autofocus.
	FocusModeCentroid
	// FocusModeContinuousAuto describes continuous autofocus.
	FocusModeContinuousAuto
	// FocusModeContinuousCentroid describes continuous centroid autofocus.
	FocusModeContinuousCentroid
)

var focusModeNames = []string{"none", "manual", "auto", "face", "smile", "centroid", "continuous-auto", "continuous-centroid"}

// String returns enum name.
func (i FocusMode) String() string {
	return enumName(focusModeNames, int(i))
}

// FocusModeString returns enum value by its name.
func FocusModeString(s string) (FocusMode, error) {
	v, err := enumValue(focusModeNames, s)
	return FocusMode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i FocusMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *FocusMode) UnmarshalText(text []byte) error {
	v, err := FocusModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// FocusModeSet is a bit-set of FocusMode values.
type FocusModeSet uint32

// NewFocusModeSet constructs a new set out of values.
func NewFocusModeSet(values ...FocusMode) FocusModeSet {
	var s FocusModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s FocusModeSet) Contains(v FocusMode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s FocusModeSet) Values() []FocusMode {
	result := make([]FocusMode, 0)
	for ii := range focusModeNames {
		if s.Contains(FocusMode(ii)) {
			result = append(result, FocusMode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s FocusModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseFocusModeSet constructs a set out of value names.
func ParseFocusModeSet(names []string) (FocusModeSet, error) {
	var s FocusModeSet
	for _, n := range names {
		v, err := FocusModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewFocusModeSet(v)
	}

	return s, nil
}
