package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.API.Limit != 1 {
		t.Errorf("expected api.limit 1, got %d", cfg.API.Limit)
	}
	if cfg.API.MinScore != 1000 {
		t.Errorf("expected api.min_score 1000, got %v", cfg.API.MinScore)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("expected api.timeout 30s, got %v", cfg.API.Timeout)
	}
	if cfg.Breaker.Limit != 500 {
		t.Errorf("expected breaker.limit 500, got %d", cfg.Breaker.Limit)
	}
	if cfg.Breaker.Pause != time.Minute {
		t.Errorf("expected breaker.pause 1m, got %v", cfg.Breaker.Pause)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log.level 'info', got %q", cfg.Log.Level)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.API.Limit != DefaultLimit {
		t.Errorf("expected default limit, got %d", cfg.API.Limit)
	}
	if cfg.API.MinScore != DefaultMinScore {
		t.Errorf("expected default min score, got %v", cfg.API.MinScore)
	}
	if cfg.Breaker.Pause != DefaultBreakerPause {
		t.Errorf("expected default breaker pause, got %v", cfg.Breaker.Pause)
	}
	if cfg.Log.Dir != DefaultLogDir {
		t.Errorf("expected default log dir, got %q", cfg.Log.Dir)
	}

	// Explicit values survive
	cfg2 := &Config{}
	cfg2.API.Limit = 10
	cfg2.Log.Level = "debug"
	cfg2.ApplyDefaults()
	if cfg2.API.Limit != 10 {
		t.Errorf("explicit limit should survive ApplyDefaults, got %d", cfg2.API.Limit)
	}
	if cfg2.Log.Level != "debug" {
		t.Errorf("explicit level should survive ApplyDefaults, got %q", cfg2.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "negative min score",
			mutate:  func(c *Config) { c.API.MinScore = -1 },
			wantErr: "api.min_score",
		},
		{
			name:    "limit too large",
			mutate:  func(c *Config) { c.API.Limit = 501 },
			wantErr: "api.limit",
		},
		{
			name:    "negative breaker pause",
			mutate:  func(c *Config) { c.Breaker.Pause = -time.Second },
			wantErr: "breaker.pause",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "multiple validation errors") {
		t.Errorf("expected multi-error header, got %q", msg)
	}
	if !strings.Contains(msg, "a: bad") || !strings.Contains(msg, "b: worse") {
		t.Errorf("expected both errors listed, got %q", msg)
	}

	single := ValidationErrors{{Field: "a", Message: "bad"}}
	if single.Error() != "a: bad" {
		t.Errorf("single error should not have header, got %q", single.Error())
	}
}
