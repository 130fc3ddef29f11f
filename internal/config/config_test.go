package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "monday", cfg.General.WeekStart)
	assert.Equal(t, 2000, cfg.Calories.DefaultGoal)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.WeekStart = "sunday"
	cfg.Calories.DefaultGoal = 1800
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "daybook")
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "config.toml"),
		[]byte("[general]\nweek_start = \"sunday\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sunday", cfg.General.WeekStart)
	// Untouched sections keep their defaults
	assert.Equal(t, 2000, cfg.Calories.DefaultGoal)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestLoadMalformedConfigErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "daybook")
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "config.toml"),
		[]byte("not = [valid"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestDataDirHonorsOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/custom"
	assert.Equal(t, "/tmp/custom", DataDir(cfg))

	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	cfg.General.DataDir = ""
	assert.Equal(t, filepath.Join("/tmp/xdg", "daybook"), DataDir(cfg))
}
