package utils

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// NewID returns random identifier used for subscriptions.
func NewID() int64 {
	return TimeNow() + rand.Int63()
}

// NormalizeName validates that final session name is correct.
func NormalizeName(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	replacer := strings.NewReplacer("%", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		";", "_",
		".", "_",
		"$", "_",
		"-", "_",
		" ", "_")
	return replacer.Replace(raw)
}

// GetCurrentWorkingDir returns application working directory.
func GetCurrentWorkingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		panic("Failed to get current working dir")
	}

	return cwd
}

// GetDefaultConfigPath returns default config file which is cwd/camera.yaml.
func GetDefaultConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}

	return fmt.Sprintf("%s/camera.yaml", GetCurrentWorkingDir())
}

// ConfigPath allows to re-write default config location.
var ConfigPath = ""
