package config

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize sets up a configuration directory, writing the built-in
// config.yaml unless one already exists, then loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	osFs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	_, err := osFs.Stat(ConfigurationName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("Creating %s", filepath.Join(dir, ConfigurationName))
		if err := afero.WriteFile(osFs, ConfigurationName, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		logger.Printf("Found existing %s", filepath.Join(dir, ConfigurationName))
	}

	return Load(dir)
}
