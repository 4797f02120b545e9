package utils

import (
	"testing"

	"github.com/go-home-io/camera/mocks"
	"github.com/stretchr/testify/assert"
)

type validated struct {
	Quality uint8  `validate:"percent" default:"75"`
	Port    int32  `validate:"port" default:"8090"`
	Filter  string `validate:"glob" default:"*"`
	File    string `validate:"omitempty,filename"`
}

// Tests valid structures.
func TestValidStructures(t *testing.T) {
	data := []*validated{
		{Quality: 1, Port: 1, Filter: "capture-*", File: "a.jpg"},
		{Quality: 100, Port: 65535, Filter: "{focus-done,picture-saved}", File: "IMG 0001.jpeg"},
	}

	v := NewValidator(mocks.FakeNewLogger(nil))
	for _, d := range data {
		assert.True(t, v.Validate(d), d.Filter)
	}
}

// Tests that defaults are applied to empty fields.
func TestDefaultValues(t *testing.T) {
	v := NewValidator(mocks.FakeNewLogger(nil))
	d := &validated{Port: 9000}

	assert.True(t, v.Validate(d))
	assert.Equal(t, uint8(75), d.Quality)
	assert.Equal(t, int32(9000), d.Port)
	assert.Equal(t, "*", d.Filter)
}

// Tests validation of a non-pointer.
func TestNotPointer(t *testing.T) {
	v := NewValidator(mocks.FakeNewLogger(nil))
	assert.False(t, v.Validate(validated{Port: 8080}))
}

// Tests invalid structures and logged fields.
func TestInvalidStructures(t *testing.T) {
	data := []*validated{
		{Quality: 120},
		{Port: 100000},
		{Filter: "capture-["},
		{File: "../a.jpg"},
		{File: "photos/a.jpg"},
		{File: `c:\a.jpg`},
		{File: ".."},
		{File: "   "},
	}

	warnings := 0
	v := NewValidator(mocks.FakeNewLogger(func(msg string) {
		if "Validation error" == msg {
			warnings++
		}
	}))

	for k, d := range data {
		assert.False(t, v.Validate(d), "%d", k)
	}

	assert.Equal(t, len(data), warnings)
}
