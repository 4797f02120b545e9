package enums

// FocusPoints describes focus region point layout.
type FocusPoints int

const (
	// FocusPointsNone describes unset layout.
	FocusPointsNone FocusPoints = iota
	// FocusPointsOneCentral describes a single central point.
	FocusPointsOneCentral
	// FocusPointsFive describes five points layout.
	FocusPointsFive
	// FocusPointsSeven describes seven points layout.
	FocusPointsSeven
	// FocusPointsNine describes nine points layout.
	FocusPointsNine
)

var focusPointsNames = []string{"none", "one-central", "five", "seven", "nine"}

// String returns enum name.
func (i FocusPoints) String() string {
	return enumName(focusPointsNames, int(i))
}

// FocusPointsString returns enum value by its name.
func FocusPointsString(s string) (FocusPoints, error) {
	v, err := enumValue(focusPointsNames, s)
	return FocusPoints(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i FocusPoints) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *FocusPoints) UnmarshalText(text []byte) error {
	v, err := FocusPointsString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// FocusPointsSet is a bit-set of FocusPoints values.
type FocusPointsSet uint32

// NewFocusPointsSet constructs a new set out of values.
func NewFocusPointsSet(values ...FocusPoints) FocusPointsSet {
	var s FocusPointsSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s FocusPointsSet) Contains(v FocusPoints) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s FocusPointsSet) Values() []FocusPoints {
	result := make([]FocusPoints, 0)
	for ii := range focusPointsNames {
		if s.Contains(FocusPoints(ii)) {
			result = append(result, FocusPoints(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s FocusPointsSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseFocusPointsSet constructs a set out of value names.
func ParseFocusPointsSet(names []string) (FocusPointsSet, error) {
	var s FocusPointsSet
	for _, n := range names {
		v, err := FocusPointsString(n)
		if err != nil {
			return 0, err
		}

		s |= NewFocusPointsSet(v)
	}

	return s, nil
}
