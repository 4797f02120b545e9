package enums

// PreviewMode describes post-capture preview state.
type PreviewMode int

const (
	// PreviewModeNone describes unset preview mode.
	PreviewModeNone PreviewMode = iota
	// PreviewModeEnabled describes enabled preview.
	PreviewModeEnabled
	// PreviewModeDisabled describes disabled preview.
	PreviewModeDisabled
)

var previewModeNames = []string{"none", "enabled", "disabled"}

// String returns enum name.
func (i PreviewMode) String() string {
	return enumName(previewModeNames, int(i))
}

// PreviewModeString returns enum value by its name.
func PreviewModeString(s string) (PreviewMode, error) {
	v, err := enumValue(previewModeNames, s)
	return PreviewMode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i PreviewMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *PreviewMode) UnmarshalText(text []byte) error {
	v, err := PreviewModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// PreviewModeSet is a bit-set of PreviewMode values.
type PreviewModeSet uint32

// NewPreviewModeSet constructs a new set out of values.
func NewPreviewModeSet(values ...PreviewMode) PreviewModeSet {
	var s PreviewModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s PreviewModeSet) Contains(v PreviewMode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s PreviewModeSet) Values() []PreviewMode {
	result := make([]PreviewMode, 0)
	for ii := range previewModeNames {
		if s.Contains(PreviewMode(ii)) {
			result = append(result, PreviewMode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s PreviewModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParsePreviewModeSet constructs a set out of value names.
func ParsePreviewModeSet(names []string) (PreviewModeSet, error) {
	var s PreviewModeSet
	for _, n := range names {
		v, err := PreviewModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewPreviewModeSet(v)
	}

	return s, nil
}
