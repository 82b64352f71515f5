package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, VariantShop, cfg.Variant)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "default", cfg.Theme)
}

func TestLoadConfig_RickVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: rick\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, VariantRick, cfg.Variant)
	assert.Equal(t, "data_rick", cfg.DataDir)
}

func TestLoadConfig_ExplicitDataDirWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: rick\ndata_dir: /srv/jewel\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/jewel", cfg.DataDir)
}

func TestLoadConfig_UnknownVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: boutique\n"), 0644))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := &AppConfig{Variant: VariantRick, DataDir: "data_rick", Theme: "default"}
	require.NoError(t, SaveConfig(path, in))

	out, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestConfig_DataFilePaths(t *testing.T) {
	shop := &AppConfig{Variant: VariantShop, DataDir: "data"}
	assert.Equal(t, filepath.Join("data", "custom_jobs.csv"), shop.CustomFile())
	assert.Equal(t, filepath.Join("data", "repair_jobs.csv"), shop.RepairFile())
	assert.Equal(t, filepath.Join("data", "history.db"), shop.HistoryFile())

	rick := &AppConfig{Variant: VariantRick, DataDir: "data_rick"}
	assert.Equal(t, filepath.Join("data_rick", "custom_jobs_rick.csv"), rick.CustomFile())
	assert.Equal(t, filepath.Join("data_rick", "repair_jobs_rick.csv"), rick.RepairFile())
}
