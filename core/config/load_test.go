package config

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		cfg, err := Load(fsys, ".")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, ConfigurationName, []byte("format: json\n"), 0644))

		cfg, err := Load(fsys, ".")
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, Default().Jobs, cfg.Jobs)
	})

	t.Run("file path instead of directory", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "conf/"+ConfigurationName, []byte("jobs: 2\n"), 0644))

		cfg, err := Load(fsys, "conf/"+ConfigurationName)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Jobs)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, ConfigurationName, []byte("no_such_field: 1\n"), 0644))

		_, err := Load(fsys, ".")
		assert.Error(t, err)
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, ConfigurationName, []byte("format: xml\n"), 0644))

		_, err := Load(fsys, ".")
		assert.Error(t, err)
	})
}

func TestInitialize(t *testing.T) {
	fsys := afero.NewMemMapFs()
	logger := log.New(ioutil.Discard, "", 0)

	require.NoError(t, Initialize(fsys, ".", logger))

	// Check that the written config loads and matches the defaults.
	cfg, err := Load(fsys, ".")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Running init again keeps the existing file.
	require.NoError(t, afero.WriteFile(fsys, ConfigurationName, []byte("jobs: 2\n"), 0644))
	require.NoError(t, Initialize(fsys, ".", logger))
	cfg, err = Load(fsys, ".")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Jobs)
}
