package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvNoInput, "")
	return home
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.NoInput)
}

func TestLoad_ReadsFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(
		"api_url: https://erp.example.com/\ntimeout_seconds: 5\nlog_level: debug\n",
	), 0600))

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash is normalized away so path joining stays clean.
	assert.Equal(t, "https://erp.example.com", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(
		"api_url: https://file.example.com\n",
	), 0600))

	t.Setenv(EnvAPIURL, "https://env.example.com")
	t.Setenv(EnvNoInput, "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.True(t, cfg.NoInput)
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("api_url: [unclosed"), 0600))

	_, err := Load()
	require.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	isolateHome(t)

	cfg := Default()
	cfg.APIURL = "https://saved.example.com"
	cfg.LogFormat = "json"
	require.NoError(t, cfg.Save())

	path, err := Path()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://saved.example.com", loaded.APIURL)
	assert.Equal(t, "json", loaded.LogFormat)
}
