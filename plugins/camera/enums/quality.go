package enums

// Quality describes encoding quality class.
type Quality int

const (
	// QualityNone describes unset quality.
	QualityNone Quality = iota
	// QualityLow describes low quality.
	QualityLow
	// QualityMedium describes medium quality.
	QualityMedium
	// QualityHigh describes high quality.
	QualityHigh
)

var qualityNames = []string{"none", "low", "medium", "high"}

// String returns enum name.
func (i Quality) String() string {
	return enumName(qualityNames, int(i))
}

// QualityString returns enum value by its name.
func QualityString(s string) (Quality, error) {
	v, err := enumValue(qualityNames, s)
	return Quality(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i Quality) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Quality) UnmarshalText(text []byte) error {
	v, err := QualityString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// QualitySet is a bit-set of Quality values.
type QualitySet uint32

// NewQualitySet constructs a new set out of values.
func NewQualitySet(values ...Quality) QualitySet {
	var s QualitySet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s QualitySet) Contains(v Quality) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s QualitySet) Values() []Quality {
	result := make([]Quality, 0)
	for ii := range qualityNames {
		if s.Contains(Quality(ii)) {
			result = append(result, Quality(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s QualitySet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseQualitySet constructs a set out of value names.
func ParseQualitySet(names []string) (QualitySet, error) {
	var s QualitySet
	for _, n := range names {
		v, err := QualityString(n)
		if err != nil {
			return 0, err
		}

		s |= NewQualitySet(v)
	}

	return s, nil
}
