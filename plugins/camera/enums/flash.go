package enums

// FlashMode describes flash behaviour.
type FlashMode int

const (
	// FlashModeNone describes unset flash mode.
	FlashModeNone FlashMode = iota
	// FlashModeOff describes disabled flash.
	FlashModeOff
	// FlashModeOn describes forced flash.
	FlashModeOn
	// FlashModeAuto describes automatic flash.
	FlashModeAuto
	// FlashModeRedEye describes red-eye reduction flash.
	FlashModeRedEye
	// FlashModeFillIn describes fill-in flash.
	FlashModeFillIn
)

var flashModeNames = []string{"none", "off", "on", "auto", "red-eye", "fill-in"}

// String returns enum name.
func (i FlashMode) String() string {
	return enumName(flashModeNames, int(i))
}

// FlashModeString returns enum value by its name.
func FlashModeString(s string) (FlashMode, error) {
	v, err := enumValue(flashModeNames, s)
	return FlashMode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i FlashMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *FlashMode) UnmarshalText(text []byte) error {
	v, err := FlashModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// FlashModeSet is a bit-set of FlashMode values.
type FlashModeSet uint32

// NewFlashModeSet constructs a new set out of values.
func NewFlashModeSet(values ...FlashMode) FlashModeSet {
	var s FlashModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s FlashModeSet) Contains(v FlashMode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s FlashModeSet) Values() []FlashMode {
	result := make([]FlashMode, 0)
	for ii := range flashModeNames {
		if s.Contains(FlashMode(ii)) {
			result = append(result, FlashMode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s FlashModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseFlashModeSet constructs a set out of value names.
func ParseFlashModeSet(names []string) (FlashModeSet, error) {
	var s FlashModeSet
	for _, n := range names {
		v, err := FlashModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewFlashModeSet(v)
	}

	return s, nil
}
