// Package config provides configuration data structures for kgr.
package config

import (
	"time"
)

// Config represents the complete kgr configuration loaded from .kgr/config.yaml.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"`
	Breaker BreakerConfig `yaml:"breaker" json:"breaker"`
	Log     LogConfig     `yaml:"log"     json:"log"`
}

// APIConfig configures the Google Knowledge Graph Search API client.
type APIConfig struct {
	// Key is the API key. Usually provided via flag or KGR_API_KEY instead.
	Key string `yaml:"key" json:"key"`
	// Endpoint overrides the API endpoint. Empty means the Google default.
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	// Limit is the number of entities requested per query (default: 1).
	Limit int64 `yaml:"limit" json:"limit"`
	// MinScore is the minimum resultScore a suggestion must exceed (default: 1000).
	MinScore float64 `yaml:"min_score" json:"min_score"`
	// Languages restricts results to these language codes (e.g. "en").
	Languages []string `yaml:"languages" json:"languages"`
	// Types restricts results to these schema.org types (e.g. "Person").
	Types []string `yaml:"types" json:"types"`
	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// BreakerConfig configures the rate-limit circuit breaker.
// Google rate-limits Knowledge Graph requests per second (undocumented);
// after Limit consecutive unattended requests kgr pauses for Pause.
type BreakerConfig struct {
	// Limit is the number of consecutive requests before pausing (default: 500).
	Limit int `yaml:"limit" json:"limit"`
	// Pause is how long to pause once the limit is hit (default: 1m).
	Pause time.Duration `yaml:"pause" json:"pause"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error (default: info).
	Level string `yaml:"level" json:"level"`
	// Dir is the log directory (default: .kgr/logs).
	Dir string `yaml:"dir" json:"dir"`
	// JSON switches log files to JSON format (default: false).
	JSON bool `yaml:"json" json:"json"`
}

// Default values.
const (
	DefaultLimit        = int64(1)
	DefaultMinScore     = float64(1000)
	DefaultTimeout      = 30 * time.Second
	DefaultBreakerLimit = 500
	DefaultBreakerPause = time.Minute
	DefaultLogLevel     = "info"
	DefaultLogDir       = ".kgr/logs"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			Limit:    DefaultLimit,
			MinScore: DefaultMinScore,
			Timeout:  DefaultTimeout,
		},
		Breaker: BreakerConfig{
			Limit: DefaultBreakerLimit,
			Pause: DefaultBreakerPause,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			Dir:   DefaultLogDir,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	if c.API.Limit == 0 {
		c.API.Limit = DefaultLimit
	}
	if c.API.MinScore == 0 {
		c.API.MinScore = DefaultMinScore
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.Breaker.Limit == 0 {
		c.Breaker.Limit = DefaultBreakerLimit
	}
	if c.Breaker.Pause == 0 {
		c.Breaker.Pause = DefaultBreakerPause
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Dir == "" {
		c.Log.Dir = DefaultLogDir
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.API.Limit < 0 {
		errs = append(errs, &ValidationError{Field: "api.limit", Message: "must be non-negative"})
	}
	// The API caps limit at 500 entities per request.
	if c.API.Limit > 500 {
		errs = append(errs, &ValidationError{Field: "api.limit", Message: "must be at most 500"})
	}
	if c.API.MinScore < 0 {
		errs = append(errs, &ValidationError{Field: "api.min_score", Message: "must be non-negative"})
	}
	if c.API.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "api.timeout", Message: "must be non-negative"})
	}

	if c.Breaker.Limit < 0 {
		errs = append(errs, &ValidationError{Field: "breaker.limit", Message: "must be non-negative"})
	}
	if c.Breaker.Pause < 0 {
		errs = append(errs, &ValidationError{Field: "breaker.pause", Message: "must be non-negative"})
	}

	if c.Log.Level != "" {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
