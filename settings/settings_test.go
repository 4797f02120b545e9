package settings

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-home-io/camera/plugins/camera/enums"
	"github.com/go-home-io/camera/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
system: logger
provider: logrus
level: debug
format: json
---
system: camera
provider: simulator
session: Kitchen Door
capabilities:
  features: [viewfinder, flash, auto-focus, optical-zoom]
  modes: [still]
  flashModes: ["off", "on"]
  focusModes: [auto]
  zoom:
    max: 4
    maxOptical: 4
---
system: server
port: {{ env "CAMERA_TEST_PORT" }}
---
system: preview
width: 320
distance: 5
---
system: capture
pendingTTL: 30s
`

// Writes config into temporary folder.
func writeConfig(t *testing.T, files map[string]string) string {
	dir, err := ioutil.TempDir("", "camera_settings")
	require.NoError(t, err)

	for k, v := range files {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, k), []byte(v), 0600))
	}

	return dir
}

// Loads settings with buffered output.
func load(t *testing.T, location string) (providers.ISettingsProvider, *bytes.Buffer, error) {
	out := &bytes.Buffer{}
	s, err := Load(&StartUpOptions{Config: location, Output: out})
	if nil != s {
		s.Cron().Stop()
	}

	return s, out, err
}

// Tests full config loading.
func TestFullConfig(t *testing.T) {
	require.NoError(t, os.Setenv("CAMERA_TEST_PORT", "9123"))
	defer os.Unsetenv("CAMERA_TEST_PORT")

	dir := writeConfig(t, map[string]string{"camera.yaml": fullConfig})
	defer os.RemoveAll(dir)

	s, out, err := load(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "kitchen_door", s.Session())
	assert.Equal(t, 9123, s.ServerSettings().Port)
	assert.False(t, s.ServerSettings().Disabled)
	assert.Equal(t, 320, s.PreviewSettings().Width)
	assert.Equal(t, uint(75), s.PreviewSettings().Quality)
	assert.Equal(t, 5, s.PreviewSettings().Distance)
	assert.Equal(t, 30*time.Second, s.CaptureSettings().PendingTTL)
	assert.Equal(t, 64, s.EventsSettings().QueueSize)
	assert.Equal(t, "simulator", s.BackendSettings().Provider)

	caps := s.CapabilitiesOverride()
	require.NotNil(t, caps)
	assert.True(t, caps.HasFeature(enums.FeatureFlash|enums.FeatureOpticalZoom))
	assert.True(t, caps.FlashModes.Contains(enums.FlashModeOn))
	assert.False(t, caps.FlashModes.Contains(enums.FlashModeAuto))
	assert.Equal(t, 4.0, caps.MaxZoom(false))

	caps.FlashModes = 0
	assert.True(t, s.CapabilitiesOverride().FlashModes.Contains(enums.FlashModeOn))

	s.PluginLogger("camera", "simulator").Debug("plugin message")
	s.SystemLogger().Flush()
	assert.Contains(t, out.String(), `"session":"kitchen_door"`)
	assert.Contains(t, out.String(), "plugin message")
}

// Tests defaults when sections are missing.
func TestDefaults(t *testing.T) {
	dir := writeConfig(t, map[string]string{"camera.yml": "system: events\nqueueSize: 10\n"})
	defer os.RemoveAll(dir)

	s, _, err := load(t, dir)
	require.NoError(t, err)

	assert.NotEmpty(t, s.Session())
	assert.Equal(t, 8090, s.ServerSettings().Port)
	assert.Equal(t, 10, s.EventsSettings().QueueSize)
	assert.Equal(t, 32, s.EventsSettings().SubscriberBuffer)
	assert.Equal(t, 5*time.Minute, s.CaptureSettings().PendingTTL)
	assert.Nil(t, s.CapabilitiesOverride())
	assert.NotNil(t, s.Validator())
}

// Tests broken configs.
func TestBrokenConfigs(t *testing.T) {
	data := map[string]string{
		"unknown backend":   "system: camera\nprovider: gstreamer\n",
		"wrong port":        "system: server\nport: 70000\n",
		"duplicated":        "system: server\nport: 80\n---\nsystem: server\nport: 81\n",
		"wrong feature":     "system: camera\ncapabilities:\n  features: [x-ray]\n",
		"wrong flash":       "system: camera\ncapabilities:\n  features: [flash]\n  flashModes: [strobe]\n",
		"no features":       "system: camera\ncapabilities:\n  modes: [still]\n",
		"wrong logger":      "system: logger\nprovider: syslog\n",
		"wrong log format":  "system: logger\nprovider: logrus\nformat: xml\n",
		"broken yaml":       "system: server\n  port: : 1\n",
		"broken template":   "system: server\nport: {{ env }\n",
		"wrong preview":     "system: preview\nquality: 101\n",
		"wrong events size": "system: events\nqueueSize: 100000\n",
	}

	for k, v := range data {
		dir := writeConfig(t, map[string]string{"camera.yaml": v})
		_, _, err := load(t, dir)
		assert.Error(t, err, k)
		os.RemoveAll(dir)
	}

	_, _, err := load(t, "/definitely/missing/camera.yaml")
	assert.Error(t, err)
}

// Tests that unknown and incomplete records are skipped.
func TestSkippedRecords(t *testing.T) {
	dir := writeConfig(t, map[string]string{
		"a.yaml":  "system: device\nprovider: hue\n---\nprovider: none\n",
		"_b.yaml": "system: server\nport: 0\n",
	})
	defer os.RemoveAll(dir)

	s, out, err := load(t, dir)
	require.NoError(t, err)
	assert.Equal(t, 8090, s.ServerSettings().Port)
	assert.Contains(t, out.String(), "Unknown config system")
}
