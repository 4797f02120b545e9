package enums

// Audio describes video sound recording state.
type Audio int

const (
	// AudioNone describes unset audio state.
	AudioNone Audio = iota
	// AudioOn describes recording with sound.
	AudioOn
	// AudioOff describes muted recording.
	AudioOff
)

var audioNames = []string{"none", "on", "off"}

// String returns enum name.
func (i Audio) String() string {
	return enumName(audioNames, int(i))
}

// AudioString returns enum value by its name.
func AudioString(s string) (Audio, error) {
	v, err := enumValue(audioNames, s)
	return Audio(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (i Audio) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Audio) UnmarshalText(text []byte) error {
	v, err := AudioString(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// AudioSet is a bit-set of Audio values.
type AudioSet uint32

// NewAudioSet constructs a new set out of values.
func NewAudioSet(values ...Audio) AudioSet {
	var s AudioSet
	for _, v := range values {
		s |= 1 << uint(v)
	}

	return s
}

// Contains checks whether value is a member of the set.
func (s AudioSet) Contains(v Audio) bool {
	return v >= 0 && s&(1<<uint(v)) != 0
}

// Values returns set members in ascending order.
func (s AudioSet) Values() []Audio {
	result := make([]Audio, 0)
	for ii := range audioNames {
		if s.Contains(Audio(ii)) {
			result = append(result, Audio(ii))
		}
	}

	return result
}

// Strings returns names of the set members.
func (s AudioSet) Strings() []string {
	values := s.Values()
	result := make([]string, len(values))
	for ii, v := range values {
		result[ii] = v.String()
	}

	return result
}

// ParseAudioSet constructs a set out of value names.
func ParseAudioSet(names []string) (AudioSet, error) {
	var s AudioSet
	for _, n := range names {
		v, err := AudioString(n)
		if err != nil {
			return 0, err
		}

		s |= NewAudioSet(v)
	}

	return s, nil
}
