package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, filepath.Join(dir, "sub", DefaultDBName), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "sub", DefaultLogName), cfg.LogPath)
	assert.Equal(t, "priority-high-low", cfg.DefaultSort)
	assert.Equal(t, time.Second, cfg.LoginDelay())
	assert.Equal(t, "q", cfg.Keys.Quit)

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreate_ReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	data := `
db_path = "/var/lib/focustask/tasks.db"
default_day = "besok"
login_delay_ms = 0

[keys]
quit = "x"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/focustask/tasks.db", cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, DefaultLogName), cfg.LogPath)
	assert.Equal(t, "besok", cfg.DefaultDay)
	assert.Zero(t, cfg.LoginDelay())
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "a", cfg.Keys.Add, "unset keys keep defaults")
}

func TestLoadOrCreate_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("db_path = ["), 0o644))
	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestResolveConfigPath_Env(t *testing.T) {
	t.Setenv(configEnv, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", ResolveConfigPath())
}

func TestLoginDelay_Negative(t *testing.T) {
	assert.Zero(t, Config{LoginDelayMS: -5}.LoginDelay())
}
