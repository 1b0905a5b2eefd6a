package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultAddr        = ":8080"
	DefaultAccelerator = "gpu"
	DefaultOverhead    = 1.2
	DefaultLogLevel    = "info"
)

// Config holds runtime parameters for the CLI and the HTTP server.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr               string   `json:"addr" yaml:"addr" toml:"addr"`
	CatalogPath        string   `json:"catalog_path" yaml:"catalog_path" toml:"catalog_path"`
	DefaultAccelerator string   `json:"default_accelerator" yaml:"default_accelerator" toml:"default_accelerator"`
	MemoryOverhead     float64  `json:"memory_overhead" yaml:"memory_overhead" toml:"memory_overhead"`
	LogLevel           string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	MaxBodyBytes       int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins        []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	CORSMethods        []string `json:"cors_methods" yaml:"cors_methods" toml:"cors_methods"`
	CORSHeaders        []string `json:"cors_headers" yaml:"cors_headers" toml:"cors_headers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyDefaults fills unspecified fields.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" { c.Addr = DefaultAddr }
	if c.DefaultAccelerator == "" { c.DefaultAccelerator = DefaultAccelerator }
	if c.MemoryOverhead <= 0 { c.MemoryOverhead = DefaultOverhead }
	if c.LogLevel == "" { c.LogLevel = DefaultLogLevel }
	if c.MaxBodyBytes <= 0 { c.MaxBodyBytes = 1 << 20 }
}
