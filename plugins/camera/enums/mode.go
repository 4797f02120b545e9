package enums

// Mode describes top-level camera operating mode.
type Mode int

const (
	// ModeNone describes unset mode.
	ModeNone Mode = iota
	// ModeStill describes still picture mode.
	ModeStill
	// ModeVideo describes video recording mode.
	ModeVideo
)

var modeNames = []string{"none", "still", "video"}

// String returns enum name.
func (i Mode) String() string {
	return enumName(modeNames, int(i))
}

// ModeString returns enum value by its name.
func ModeString(s string) (Mode, error) {
	v, err := enumValue(modeNames, s)
	return Mode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i Mode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Mode) UnmarshalText(text []byte) error {
	v, err := ModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// ModeSet is a bit-set of Mode values.
type ModeSet uint32

// NewModeSet constructs a new set out of values.
func NewModeSet(values ...Mode) ModeSet {
	var s ModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s ModeSet) Contains(v Mode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s ModeSet) Values() []Mode {
	result := make([]Mode, 0)
	for ii := range modeNames {
		if s.Contains(Mode(ii)) {
			result = append(result, Mode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s ModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseModeSet constructs a set out of value names.
func ParseModeSet(names []string) (ModeSet, error) {
	var s ModeSet
	for _, n := range names {
		v, err := ModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewModeSet(v)
	}

	return s, nil
}
