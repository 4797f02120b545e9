package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests system names.
func TestSystemTypes(t *testing.T) {
	for ii := range systemTypeNames {
		s, err := SystemTypeString(SystemType(ii).String())
		require.NoError(t, err)
		assert.Equal(t, SystemType(ii), s)
	}

	_, err := SystemTypeString("device")
	assert.Error(t, err)
	assert.Equal(t, "unknown", SystemType(99).String())
}
