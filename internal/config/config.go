package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultBaseURL  = "http://localhost:8000/api/v1"
	defaultTimeout  = 30 // seconds
	defaultPageSize = 20
	maxPageSize     = 100
	defaultLogLevel = "info"
)

type Config struct {
	// RentFlow backend
	API APIConfig `koanf:"api"`

	// Product walkthrough shown by the demo modal
	Demo DemoConfig `koanf:"demo"`

	// Log file settings (the terminal is owned by the UI)
	Log LogConfig `koanf:"log"`
}

// APIConfig holds the REST client configuration.
type APIConfig struct {
	BaseURL        string `koanf:"base_url"`        // e.g., "http://localhost:8000/api/v1"
	TimeoutSeconds int    `koanf:"timeout_seconds"` // per request (default: 30)
	PageSize       int    `koanf:"page_size"`       // listing page size (1-100, default: 20)
	Token          string `koanf:"token"`           // seeds the stored bearer token
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DemoConfig selects the walkthrough script.
type DemoConfig struct {
	Script string `koanf:"script"` // path to a TOML script, empty for the bundled one
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/rentflow/rentflow.log
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.API.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.API.BaseURL), "/")
	cfg.API.Token = strings.TrimSpace(cfg.API.Token)

	if cfg.Demo.Script != "" {
		cfg.Demo.Script = expandPath(cfg.Demo.Script)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/rentflow/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rentflow", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasToken returns true if a bearer token is configured.
func (c *Config) HasToken() bool {
	return c.API.Token != ""
}

// GetAPIConfig returns the API configuration with defaults applied.
func (c *Config) GetAPIConfig() APIConfig {
	cfg := c.API

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeout
	}
	if cfg.PageSize <= 0 || cfg.PageSize > maxPageSize {
		cfg.PageSize = defaultPageSize
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	if cfg.Level == "" {
		cfg.Level = defaultLogLevel
	}

	return cfg
}
