// Package config provides configuration saving for kgr init.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDocument mirrors Config with string durations so the saved YAML is
// human-editable ("30s", "1m") instead of nanosecond integers.
type configDocument struct {
	API struct {
		Key       string   `yaml:"key"`
		Endpoint  string   `yaml:"endpoint,omitempty"`
		Limit     int64    `yaml:"limit"`
		MinScore  float64  `yaml:"min_score"`
		Languages []string `yaml:"languages,omitempty"`
		Types     []string `yaml:"types,omitempty"`
		Timeout   string   `yaml:"timeout"`
	} `yaml:"api"`
	Breaker struct {
		Limit int    `yaml:"limit"`
		Pause string `yaml:"pause"`
	} `yaml:"breaker"`
	Log struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
		JSON  bool   `yaml:"json"`
	} `yaml:"log"`
}

// Save writes the configuration to the given path as YAML,
// creating parent directories as needed.
func Save(cfg *Config, path string) error {
	var doc configDocument
	doc.API.Key = cfg.API.Key
	doc.API.Endpoint = cfg.API.Endpoint
	doc.API.Limit = cfg.API.Limit
	doc.API.MinScore = cfg.API.MinScore
	doc.API.Languages = cfg.API.Languages
	doc.API.Types = cfg.API.Types
	doc.API.Timeout = cfg.API.Timeout.String()
	doc.Breaker.Limit = cfg.Breaker.Limit
	doc.Breaker.Pause = cfg.Breaker.Pause.String()
	doc.Log.Level = cfg.Log.Level
	doc.Log.Dir = cfg.Log.Dir
	doc.Log.JSON = cfg.Log.JSON

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := []byte("# kgr configuration\n# See https://developers.google.com/knowledge-graph for the API.\n")
	if err := os.WriteFile(path, append(header, data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
