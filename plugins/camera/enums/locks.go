package enums

import "strings"

// Lock describes a set of frozen auto-adjusting settings.
type Lock uint8

const (
	// LockAutoFocus freezes autofocus.
	LockAutoFocus Lock = 1 << iota
	// LockAutoExposure freezes automatic exposure.
	LockAutoExposure
	// LockAutoWhiteBalance freezes automatic white balance.
	LockAutoWhiteBalance
)

// LockNone describes absence of locks.
const LockNone Lock = 0

var lockNames = []string{"autofocus", "autoexposure", "autowhitebalance"}

// Has checks whether lock bit is set.
func (l Lock) Has(bit Lock) bool {
	return l&bit != LockNone
}

// Strings returns names of all set lock bits.
func (l Lock) Strings() []string {
	result := make([]string, 0)
	for ii, v := range lockNames {
		if l.Has(1 << uint(ii)) {
			result = append(result, v)
		}
	}

	return result
}

// String returns pipe-separated list of locks.
func (l Lock) String() string {
	if LockNone == l {
		return "none"
	}

	return strings.Join(l.Strings(), "|")
}

// ParseLocks constructs locks set out of names.
func ParseLocks(names []string) (Lock, error) {
	locks := LockNone
	for _, n := range names {
		if "none" == strings.ToLower(strings.TrimSpace(n)) {
			continue
		}

		v, err := enumValue(lockNames, n)
		if err != nil {
			return LockNone, err
		}

		locks |= 1 << uint(v)
	}

	return locks, nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Lock) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lock) UnmarshalText(text []byte) error {
	v, err := ParseLocks(strings.Split(string(text), "|"))
	if err != nil {
		return err
	}

	*l = v
	return nil
}
