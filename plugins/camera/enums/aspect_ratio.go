package enums

// AspectRatio describes picture aspect ratio.
type AspectRatio int

const (
	// AspectRatioNone describes unset aspect ratio.
	AspectRatioNone AspectRatio = iota
	// AspectRatio4x3 describes 4:3 aspect ratio.
	AspectRatio4x3
	// AspectRatio16x9 describes 16:9 aspect ratio.
	AspectRatio16x9
	// AspectRatio3x2 describes 3:2 aspect ratio.
	AspectRatio3x2
)

var aspectRatioNames = []string{"none", "4x3", "16x9", "3x2"}

// String returns enum name.
func (i AspectRatio) String() string {
	return enumName(aspectRatioNames, int(i))
}

// AspectRatioString returns enum value by its name.
func AspectRatioString(s string) (AspectRatio, error) {
	v, err := enumValue(aspectRatioNames, s)
	return AspectRatio(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i AspectRatio) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *AspectRatio) UnmarshalText(text []byte) error {
	v, err := AspectRatioString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// AspectRatioSet is a bit-set of AspectRatio values.
type AspectRatioSet uint32

// NewAspectRatioSet constructs a new set out of values.
func NewAspectRatioSet(values ...AspectRatio) AspectRatioSet {
	var s AspectRatioSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s AspectRatioSet) Contains(v AspectRatio) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s AspectRatioSet) Values() []AspectRatio {
	result := make([]AspectRatio, 0)
	for ii := range aspectRatioNames {
		if s.Contains(AspectRatio(ii)) {
			result = append(result, AspectRatio(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s AspectRatioSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseAspectRatioSet constructs a set out of value names.
func ParseAspectRatioSet(names []string) (AspectRatioSet, error) {
	var s AspectRatioSet
	for _, n := range names {
		v, err := AspectRatioString(n)
		if err != nil {
			return 0, err
		}

		s |= NewAspectRatioSet(v)
	}

	return s, nil
}
