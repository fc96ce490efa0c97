// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package config provides configuration loading and management for vex.
//
// Configuration sources, later ones winning:
//   - Built-in defaults
//   - ~/.vex/config.toml
//   - VEX_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"

	"github.com/vexlabs/vex-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete vex configuration.
type Config struct {
	API APIConfig `toml:"api"`
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// APIConfig configures the completion endpoint.
type APIConfig struct {
	// BaseURL of an OpenAI-compatible API
	BaseURL string `toml:"base_url" env:"VEX_API_BASE_URL"`
	// Key sent as a bearer token. Prefer setting this via VEX_API_KEY
	// rather than writing it into the config file.
	Key string `toml:"key" env:"VEX_API_KEY"`
	// Model requested for completions
	Model string `toml:"model" env:"VEX_MODEL"`
	// Temperature for sampling
	Temperature float64 `toml:"temperature" env:"VEX_TEMPERATURE"`
	// MaxTokens caps reply length
	MaxTokens int `toml:"max_tokens" env:"VEX_MAX_TOKENS"`
	// TimeoutSeconds for a completion request
	TimeoutSeconds int `toml:"timeout_seconds" env:"VEX_TIMEOUT_SECONDS"`
	// RequestsPerMinute throttles outgoing calls client-side
	RequestsPerMinute int `toml:"requests_per_minute" env:"VEX_REQUESTS_PER_MINUTE"`
}

// UIConfig configures display behavior.
type UIConfig struct {
	// SidebarWidth in terminal cells
	SidebarWidth int `toml:"sidebar_width" env:"VEX_SIDEBAR_WIDTH"`
	// Markdown enables glamour rendering of assistant replies
	Markdown bool `toml:"markdown" env:"VEX_MARKDOWN"`
}

// LogConfig configures the application log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level" env:"VEX_LOG_LEVEL"`
}

// Timeout returns the API timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "https://api.openai.com",
			Model:             "gpt-4o-mini",
			Temperature:       0.7,
			MaxTokens:         4096,
			TimeoutSeconds:    60,
			RequestsPerMinute: 20,
		},
		UI: UIConfig{
			SidebarWidth: 32,
			Markdown:     true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the vex configuration directory, ~/.vex.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".vex"), nil
}

// Path returns the config file location, ~/.vex/config.toml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ensureSecurePermissions tightens config file permissions. The file may
// carry an API key, so group/world access is stripped.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0077 != 0 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix config permissions: %w", err)
		}
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from the default path, falling back to
// built-in defaults when no file exists, then applies environment
// overrides and validates.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads configuration from an explicit file path. A missing
// file is not an error: defaults are used. The file is decoded over the
// defaults, so keys it omits keep their default values while explicit
// values (including false and zero) win.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := ensureSecurePermissions(path); err != nil {
			return nil, err
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies VEX_* environment variables on top of the
// loaded values.
func (c *Config) ApplyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Save writes the config to the default path with owner-only permissions.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFilePrivate(path, buf.Bytes())
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	var errs []error

	if _, err := url.Parse(c.API.BaseURL); err != nil || c.API.BaseURL == "" {
		errs = append(errs, ValidationError{Field: "api.base_url", Message: "must be a valid URL"})
	}
	if c.API.Temperature < 0 || c.API.Temperature > 2 {
		errs = append(errs, ValidationError{Field: "api.temperature", Message: "must be between 0 and 2"})
	}
	if c.API.MaxTokens < 1 {
		errs = append(errs, ValidationError{Field: "api.max_tokens", Message: "must be positive"})
	}
	if c.API.TimeoutSeconds < 1 {
		errs = append(errs, ValidationError{Field: "api.timeout_seconds", Message: "must be positive"})
	}
	if c.UI.SidebarWidth < 16 {
		errs = append(errs, ValidationError{Field: "ui.sidebar_width", Message: "must be at least 16"})
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "log.level", Message: "must be debug, info, warn, or error"})
	}

	return errors.Join(errs...)
}
