package enums

// WhiteBalanceMode describes white balance control.
type WhiteBalanceMode int

const (
	// WhiteBalanceModeNone describes unset white balance.
	WhiteBalanceModeNone WhiteBalanceMode = iota
	// WhiteBalanceModeManual describes fixed color temperature.
	WhiteBalanceModeManual
	// WhiteBalanceModeAuto describes automatic white balance.
	WhiteBalanceModeAuto
	// WhiteBalanceModeSunlight describes sunlight preset.
	WhiteBalanceModeSunlight
	// WhiteBalanceModeCloudy describes cloudy preset.
	WhiteBalanceModeCloudy
	// WhiteBalanceModeShade describes shade preset.
	WhiteBalanceModeShade
	// WhiteBalanceModeTungsten describes tungsten preset.
	WhiteBalanceModeTungsten
	// WhiteBalanceModeFluorescent describes fluorescent preset.
	WhiteBalanceModeFluorescent
	// WhiteBalanceModeIncandescent describes incandescent preset.
	WhiteBalanceModeIncandescent
	// WhiteBalanceModeFlash describes flash preset.
	WhiteBalanceModeFlash
	// WhiteBalanceModeSunset describes sunset preset.
	WhiteBalanceModeSunset
)

var whiteBalanceModeNames = []string{"none", "manual", "auto", "sunlight", "cloudy", "shade", "tungsten", "fluorescent", "incandescent", "flash", "sunset"}

// String returns enum name.
func (i WhiteBalanceMode) String() string {
	return enumName(whiteBalanceModeNames, int(i))
}

// WhiteBalanceModeString returns enum value by its name.
func WhiteBalanceModeString(s string) (WhiteBalanceMode, error) {
	v, err := enumValue(whiteBalanceModeNames, s)
	return WhiteBalanceMode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i WhiteBalanceMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *WhiteBalanceMode) UnmarshalText(text []byte) error {
	v, err := WhiteBalanceModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// WhiteBalanceModeSet is a bit-set of WhiteBalanceMode values.
type WhiteBalanceModeSet uint32

// NewWhiteBalanceModeSet constructs a new set out of values.
func NewWhiteBalanceModeSet(values ...WhiteBalanceMode) WhiteBalanceModeSet {
	var s WhiteBalanceModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s WhiteBalanceModeSet) Contains(v WhiteBalanceMode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s WhiteBalanceModeSet) Values() []WhiteBalanceMode {
	result := make([]WhiteBalanceMode, 0)
	for ii := range whiteBalanceModeNames {
		if s.Contains(WhiteBalanceMode(ii)) {
			result = append(result, WhiteBalanceMode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s WhiteBalanceModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseWhiteBalanceModeSet constructs a set out of value names.
func ParseWhiteBalanceModeSet(names []string) (WhiteBalanceModeSet, error) {
	var s WhiteBalanceModeSet
	for _, n := range names {
		v, err := WhiteBalanceModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewWhiteBalanceModeSet(v)
	}

	return s, nil
}
