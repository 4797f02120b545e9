// Package config loads raw configuration files.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-home-io/camera/plugins/common"
)

const (
	// Logger system.
	logSystem = "config"
)

// IConfigProvider provides capabilities for loading system configuration.
type IConfigProvider interface {
	Load() (chan []byte, error)
}

// File system config loader.
type fsConfig struct {
	location string
	logger   common.ILoggerProvider
}

// ConstructConfig contains data required for a new config provider.
type ConstructConfig struct {
	Location string
	Logger   common.ILoggerProvider
}

// NewConfigProvider constructs a new file system config provider.
// Location might be either a single file or a folder with yaml files.
func NewConfigProvider(ctor *ConstructConfig) IConfigProvider {
	return &fsConfig{
		location: ctor.Location,
		logger:   ctor.Logger,
	}
}

// IsValidConfigFileName checks whether config file name is valid.
// Files starting with underscore are ignored.
func IsValidConfigFileName(name string) bool {
	name = filepath.Base(name)
	if "" == name || name[0] == '_' {
		return false
	}

	name = filepath.Ext(name)
	return name == ".yaml" || name == ".yml"
}

// Load reads files from local file system.
// Files are sent in lexical order.
func (c *fsConfig) Load() (chan []byte, error) {
	fi, err := os.Stat(c.location)
	if err != nil {
		return nil, err
	}

	fileList := make([]string, 0)
	if !fi.IsDir() {
		fileList = append(fileList, c.location)
	} else {
		err = filepath.Walk(c.location, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				c.logger.Warn("Failed get folder files", common.LogFileToken, path,
					common.LogSystemToken, logSystem)
				return err
			}

			if f.IsDir() || !IsValidConfigFileName(path) {
				return nil
			}

			fileList = append(fileList, path)
			return nil
		})

		if err != nil {
			return nil, err
		}

		sort.Strings(fileList)
	}

	filesChan := make(chan []byte, len(fileList))
	for _, v := range fileList {
		fileData, err := ioutil.ReadFile(v)
		if err != nil {
			c.logger.Error("Failed to read config file", err, common.LogFileToken, v,
				common.LogSystemToken, logSystem)
			continue
		}

		c.logger.Info("Processing config file", common.LogFileToken, v, common.LogSystemToken, logSystem)
		filesChan <- fileData
	}

	close(filesChan)
	return filesChan, nil
}
