package enums

// Resolution describes picture resolution class.
type Resolution int

const (
	// ResolutionNone describes unset resolution.
	ResolutionNone Resolution = iota
	// ResolutionLow describes resolutions below one megapixel.
	ResolutionLow
	// ResolutionMedium describes resolutions below three megapixels.
	ResolutionMedium
	// ResolutionHigh describes resolutions of three megapixels and above.
	ResolutionHigh
)

var resolutionNames = []string{"none", "low", "medium", "high"}

// String returns enum name.
func (i Resolution) String() string {
	return enumName(resolutionNames, int(i))
}

// ResolutionString returns enum value by its name.
func ResolutionString(s string) (Resolution, error) {
	v, err := enumValue(resolutionNames, s)
	return Resolution(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i Resolution) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Resolution) UnmarshalText(text []byte) error {
	v, err := ResolutionString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// ResolutionSet is a bit-set of Resolution values.
type ResolutionSet uint32

// NewResolutionSet constructs a new set out of values.
func NewResolutionSet(values ...Resolution) ResolutionSet {
	var s ResolutionSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s ResolutionSet) Contains(v Resolution) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s ResolutionSet) Values() []Resolution {
	result := make([]Resolution, 0)
	for ii := range resolutionNames {
		if s.Contains(Resolution(ii)) {
			result = append(result, Resolution(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s ResolutionSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseResolutionSet constructs a set out of value names.
func ParseResolutionSet(names []string) (ResolutionSet, error) {
	var s ResolutionSet
	for _, n := range names {
		v, err := ResolutionString(n)
		if err != nil {
			return 0, err
		}

		s |= NewResolutionSet(v)
	}

	return s, nil
}
