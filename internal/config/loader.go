// Package config provides configuration loading and management for kgr.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".kgr/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "KGR"

	// LegacyAPIKeyEnv is the API key variable used by the original Python tool.
	// It is honored for compatibility with existing setups.
	LegacyAPIKeyEnv = "GKG_API_KEY"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Start with defaults
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// LoadOrDefault loads configuration from path, falling back to defaults
// (plus environment overrides) when no config file exists. kgr works without
// an init step, so a missing file is not an error here.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := NewConfig()
		l.applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return l.LoadConfig(path)
}

// LoadConfigFromDir loads configuration from .kgr/config.yaml in the specified directory.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	return l.LoadConfig(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	// API settings
	if v := os.Getenv(EnvPrefix + "_API_KEY"); v != "" {
		cfg.API.Key = v
	} else if v := os.Getenv(LegacyAPIKeyEnv); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv(EnvPrefix + "_API_ENDPOINT"); v != "" {
		cfg.API.Endpoint = v
	}
	if v := os.Getenv(EnvPrefix + "_API_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.API.Limit = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_API_MIN_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.API.MinScore = f
		}
	}
	if v := os.Getenv(EnvPrefix + "_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}

	// Breaker settings
	if v := os.Getenv(EnvPrefix + "_BREAKER_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Breaker.Limit = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_BREAKER_PAUSE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Breaker.Pause = d
		}
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// The yaml tags double as mapstructure tags so snake_case keys decode.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadOrDefault is a convenience function that loads configuration, falling
// back to defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}
