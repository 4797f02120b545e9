// Package enums contains camera settings enumerations and capability bit-sets.
package enums

import (
	"strconv"
	"strings"
)

// ErrUnknownValue defines unknown enum name error.
type ErrUnknownValue struct {
	Value string
}

// Error formats output.
func (e *ErrUnknownValue) Error() string {
	return "unknown value: " + e.Value
}

// Returns enum name or its numeric representation for out of range values.
func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return strconv.Itoa(i)
	}

	return names[i]
}

// Looks up enum value by name.
func enumValue(names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for ii, v := range names {
		if v == s {
			return ii, nil
		}
	}

	return 0, &ErrUnknownValue{Value: s}
}
