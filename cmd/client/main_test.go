package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Флаги перекрывают файл конфигурации
func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"url: http://from-file:3000/\nreconnect_limit: 2\nlog:\n  level: warn\n"), 0600))

	t.Setenv("LIVECLIENT_URL", "")
	t.Setenv("LIVECLIENT_TOKEN", "")

	rootCmd.SetArgs([]string{
		"--config", cfgFile,
		"--url", "http://from-flag:3000/",
		"--state", filepath.Join(dir, "state.db"),
		"--log-level", "error",
		"status",
	})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "http://from-flag:3000/", cfg.URL)
	assert.Equal(t, 2, cfg.ReconnectLimit)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.FileExists(t, filepath.Join(dir, "state.db"))
}

func TestLoadConfig_BadLogLevel(t *testing.T) {
	rootCmd.SetArgs([]string{
		"--config", "",
		"--state", filepath.Join(t.TempDir(), "state.db"),
		"--log-level", "loud",
		"status",
	})
	assert.Error(t, rootCmd.Execute())
}
