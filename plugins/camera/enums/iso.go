package enums

// IsoMode describes ISO sensitivity control.
type IsoMode int

const (
	// IsoModeNone describes unset ISO mode.
	IsoModeNone IsoMode = iota
	// IsoModeManual describes fixed ISO level.
	IsoModeManual
	// IsoModeAuto describes automatic ISO.
	IsoModeAuto
)

var isoModeNames = []string{"none", "manual", "auto"}

// String returns enum name.
func (i IsoMode) String() string {
	return enumName(isoModeNames, int(i))
}

// IsoModeString returns enum value by its name.
func IsoModeString(s string) (IsoMode, error) {
	v, err := enumValue(isoModeNames, s)
	return IsoMode(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i IsoMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *IsoMode) UnmarshalText(text []byte) error {
	v, err := IsoModeString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// IsoModeSet is a bit-set of IsoMode values.
type IsoModeSet uint32

// NewIsoModeSet constructs a new set out of values.
func NewIsoModeSet(values ...IsoMode) IsoModeSet {
	var s IsoModeSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s IsoModeSet) Contains(v IsoMode) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s IsoModeSet) Values() []IsoMode {
	result := make([]IsoMode, 0)
	for ii := range isoModeNames {
		if s.Contains(IsoMode(ii)) {
			result = append(result, IsoMode(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s IsoModeSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseIsoModeSet constructs a set out of value names.
func ParseIsoModeSet(names []string) (IsoModeSet, error) {
	var s IsoModeSet
	for _, n := range names {
		v, err := IsoModeString(n)
		if err != nil {
			return 0, err
		}

		s |= NewIsoModeSet(v)
	}

	return s, nil
}
