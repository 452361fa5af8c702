package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "liveclient.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
url: http://localhost:3000/
reconnect_limit: 2
handshake_timeout: 3s
journal_path: /tmp/j.db
resume_session: true
log:
  level: debug
  format: json
prefill:
  name: Alice
  agree: "true"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/", cfg.URL)
	assert.Equal(t, 2, cfg.ReconnectLimit)
	assert.Equal(t, 3*time.Second, cfg.HandshakeTimeout)
	assert.Equal(t, "/tmp/j.db", cfg.JournalPath)
	assert.True(t, cfg.ResumeSession)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, map[string]string{"name": "Alice", "agree": "true"}, cfg.Prefill)

	// не заданное в файле берется из Default
	assert.NotEmpty(t, cfg.StatePath)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultReconnectLimit, cfg.ReconnectLimit)
	assert.Equal(t, DefaultHandshakeTimeout, cfg.HandshakeTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "url: [not a string"))
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LIVECLIENT_URL", "https://example.com/app")
	t.Setenv("LIVECLIENT_RECONNECT_LIMIT", "7")
	t.Setenv("LIVECLIENT_LOG_LEVEL", "warn")
	t.Setenv("LIVECLIENT_TOKEN", "secret")
	t.Setenv("LIVECLIENT_HANDSHAKE_TIMEOUT", "1m")
	t.Setenv("LIVECLIENT_RESUME_SESSION", "1")

	cfg, err := Load(writeConfig(t, "url: http://file/\nreconnect_limit: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/app", cfg.URL)
	assert.Equal(t, 7, cfg.ReconnectLimit)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, time.Minute, cfg.HandshakeTimeout)
	assert.True(t, cfg.ResumeSession)
}

func TestApplyEnvOverrides_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "limit", key: "LIVECLIENT_RECONNECT_LIMIT", value: "many"},
		{name: "timeout", key: "LIVECLIENT_HANDSHAKE_TIMEOUT", value: "soon"},
		{name: "resume", key: "LIVECLIENT_RESUME_SESSION", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			err := Default().ApplyEnvOverrides()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		mutate  func(c *Config)
		name    string
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "wss", mutate: func(c *Config) { c.URL = "wss://h/p" }},
		{name: "zero limit", mutate: func(c *Config) { c.ReconnectLimit = 0 }},
		{name: "no url", mutate: func(c *Config) { c.URL = "" }, wantErr: true},
		{name: "ftp scheme", mutate: func(c *Config) { c.URL = "ftp://h/" }, wantErr: true},
		{name: "no host", mutate: func(c *Config) { c.URL = "http:///path" }, wantErr: true},
		{name: "negative limit", mutate: func(c *Config) { c.ReconnectLimit = -1 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.HandshakeTimeout = -time.Second }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.URL = "http://localhost:3000/"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
