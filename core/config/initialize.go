package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir unless one already
// exists, then loads it.
func Initialize(fs afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, ConfigurationName)
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Info("Configuration already exists", "path", path)
	} else {
		logger.Info("Writing default configuration", "path", path)
		if err := afero.WriteFile(fs, path, defaultConfigData, os.FileMode(0600)); err != nil {
			return nil, err
		}
	}

	return Load(fs, path)
}
