package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory.
// An existing file is kept as-is so running init twice is safe.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	dest := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, dest)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("%s already exists, leaving it untouched", dest)
		return nil
	}

	if err := afero.WriteFile(fsys, dest, defaultConfigData, 0644); err != nil {
		return err
	}
	logger.Printf("wrote %s", dest)
	return nil
}
