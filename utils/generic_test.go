package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tests that we're returning current time.
func TestTimeNow(t *testing.T) {
	assert.InDelta(t, time.Now().UTC().Unix(), TimeNow(), 1)
}

// Tests names normalization.
func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "kitchen_camera_1", NormalizeName(" Kitchen-Camera.1 "))
	assert.Equal(t, "a_b_c", NormalizeName("a/b\\c"))
}

// Tests config path override.
func TestDefaultConfigPath(t *testing.T) {
	ConfigPath = "/etc/camera.yaml"
	defer func() { ConfigPath = "" }()

	assert.Equal(t, "/etc/camera.yaml", GetDefaultConfigPath())
}
