// Package config загружает настройки клиента: YAML файл, затем переменные окружения LIVECLIENT_*.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "LIVECLIENT_"

// Defaults
const (
	DefaultReconnectLimit   = 5
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "auto"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config настройки клиента
type Config struct {
	// Prefill fills form controls after load, keyed by element id or name
	Prefill map[string]string `yaml:"prefill"`

	URL         string `yaml:"url"`
	StatePath   string `yaml:"state_path"`   // BoltDB с node id и session id
	JournalPath string `yaml:"journal_path"` // SQLite журнал, пусто = не писать
	Token       string `yaml:"token"`

	Log LogConfig `yaml:"log"`

	HandshakeTimeout time.Duration `yaml:"handshake_timeout"`
	ReconnectLimit   int           `yaml:"reconnect_limit"`

	// ResumeSession presents the stored session id on the first dial
	ResumeSession bool `yaml:"resume_session"`
}

// LogConfig logger settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // auto, text, json
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		ReconnectLimit:   DefaultReconnectLimit,
		HandshakeTimeout: DefaultHandshakeTimeout,
		StatePath:        defaultStatePath(),
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "liveclient.db"
	}
	return filepath.Join(dir, "liveclient", "state.db")
}

// Load reads the YAML file at path over the defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnvOverrides applies LIVECLIENT_* environment variables
func (c *Config) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvPrefix + "URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv(EnvPrefix + "TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvPrefix + "STATE_PATH"); v != "" {
		c.StatePath = v
	}
	if v := os.Getenv(EnvPrefix + "JOURNAL_PATH"); v != "" {
		c.JournalPath = v
	}

	// Logging overrides
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	if v := os.Getenv(EnvPrefix + "RECONNECT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sRECONNECT_LIMIT: %w", EnvPrefix, err)
		}
		c.ReconnectLimit = n
	}
	if v := os.Getenv(EnvPrefix + "HANDSHAKE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sHANDSHAKE_TIMEOUT: %w", EnvPrefix, err)
		}
		c.HandshakeTimeout = d
	}
	if v := os.Getenv(EnvPrefix + "RESUME_SESSION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sRESUME_SESSION: %w", EnvPrefix, err)
		}
		c.ResumeSession = b
	}

	return nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidConfig)
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: url: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: url scheme %q is not http(s) or ws(s)", ErrInvalidConfig, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url has no host", ErrInvalidConfig)
	}

	if c.ReconnectLimit < 0 {
		return fmt.Errorf("%w: reconnect_limit must not be negative", ErrInvalidConfig)
	}
	if c.HandshakeTimeout < 0 {
		return fmt.Errorf("%w: handshake_timeout must not be negative", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}
