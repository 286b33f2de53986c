package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. A missing file
// falls back to the builtin defaults so the tool works without an init
// step; fields not set in the file keep their default values.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a shlint.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	out := defaultConfig()

	configContents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	switch {
	case err == nil:
		if err := yaml.UnmarshalStrict(configContents, out); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, err
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
