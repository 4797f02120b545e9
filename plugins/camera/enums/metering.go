package enums

// MeteringMode describes light metering pattern.
type MeteringMode int

const (
	// MeteringModeNone describes unset metering.
	MeteringModeNone MeteringMode = iota
	// MeteringModeAverage describes center-weighted average metering.
	MeteringModeAverage
	// MeteringModeSpot describes spot metering.
	MeteringModeSpot
	// MeteringModeMatrix describes matrix metering.
	MeteringModeMatrix
)

var meteringModeNames = []string{"none", "average", "spot", "matrix"}

// String returns enum name.
func (i MeteringMode) String() string {
	return enumName(meteringModeNames, int(i))
}

// MeteringModeString returns enum value by its name.
func MeteringModeString(s string) (MeteringMode, error) {
	v, err := enumValue(meteringModeNames, s)
	return MeteringMode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i MeteringMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *MeteringMode) UnmarshalText(text []byte) error {
	v, err := MeteringModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// MeteringModeSet is a bit-set of MeteringMode values.
type MeteringModeSet uint32

// NewMeteringModeSet constructs a new set out of values.
func NewMeteringModeSet(values ...MeteringMode) MeteringModeSet {
	var s MeteringModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s MeteringModeSet) Contains(v MeteringMode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s MeteringModeSet) Values() []MeteringMode {
	result := make([]MeteringMode, 0)
	for ii := range meteringModeNames {
		if s.Contains(MeteringMode(ii)) {
			result = append(result, MeteringMode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s MeteringModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseMeteringModeSet constructs a set out of value names.
func ParseMeteringModeSet(names []string) (MeteringModeSet, error) {
	var s MeteringModeSet
	for _, n := range names {
		v, err := MeteringModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewMeteringModeSet(v)
	}

	return s, nil
}
