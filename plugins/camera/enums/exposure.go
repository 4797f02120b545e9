package enums

// ExposureMode describes exposure program.
type ExposureMode int

const (
	// ExposureModeNone describes unset exposure mode.
	ExposureModeNone ExposureMode = iota
	// ExposureModeManual describes manual exposure.
	ExposureModeManual
	// ExposureModeAuto describes automatic exposure.
	ExposureModeAuto
	// ExposureModeNight describes night scene program.
	ExposureModeNight
	// ExposureModeBacklight describes backlight scene program.
	ExposureModeBacklight
	// ExposureModePortrait describes portrait scene program.
	ExposureModePortrait
	// ExposureModeSports describes sports scene program.
	ExposureModeSports
	// ExposureModeLandscape describes landscape scene program.
	ExposureModeLandscape
)

var exposureModeNames = []string{"none", "manual", "auto", "night", "backlight", "portrait", "sports", "landscape"}

// String returns enum name.
func (i ExposureMode) String() string {
	return enumName(exposureModeNames, int(i))
}

// ExposureModeString returns enum value by its name.
func ExposureModeString(s string) (ExposureMode, error) {
	v, err := enumValue(exposureModeNames, s)
	return ExposureMode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i ExposureMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ExposureMode) UnmarshalText(text []byte) error {
	v, err := ExposureModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// ExposureModeSet is a bit-set of ExposureMode values.
type ExposureModeSet uint32

// NewExposureModeSet constructs a new set out of values.
func NewExposureModeSet(values ...ExposureMode) ExposureModeSet {
	var s ExposureModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s ExposureModeSet) Contains(v ExposureMode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s ExposureModeSet) Values() []ExposureMode {
	result := make([]ExposureMode, 0)
	for ii := range exposureModeNames {
		if s.Contains(ExposureMode(ii)) {
			result = append(result, ExposureMode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s ExposureModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseExposureModeSet constructs a set out of value names.
func ParseExposureModeSet(names []string) (ExposureModeSet, error) {
	var s ExposureModeSet
	for _, n := range names {
		v, err := ExposureModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewExposureModeSet(v)
	}

	return s, nil
}
