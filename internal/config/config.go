// Package config loads and validates naming service configuration
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the full service configuration.
type Config struct {
	// ListenPort is the JSON API port.
	ListenPort int `yaml:"listen_port" validate:"required,min=1,max=65535"`

	// MetricsPort serves /metrics, /health, /ready and pprof.
	MetricsPort int `yaml:"metrics_port" validate:"required,min=1,max=65535,nefield=ListenPort"`

	// DataDir is the directory for the embedded sequence/registry store.
	DataDir string `yaml:"data_dir" validate:"required"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogPretty enables console-formatted log output.
	LogPretty bool `yaml:"log_pretty"`

	// TaxonomyPath optionally overrides the built-in subject taxonomy.
	TaxonomyPath string `yaml:"taxonomy_path" validate:"omitempty,file"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		ListenPort:  8080,
		MetricsPort: 9090,
		DataDir:     "./data",
		LogLevel:    "info",
		LogPretty:   false,
	}
}

// Load reads a YAML config file, applies environment overrides and
// validates the result. An empty path loads defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides file values from LEXNAME_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("LEXNAME_LISTEN_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.ListenPort = p
		}
	}
	if v := os.Getenv("LEXNAME_METRICS_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.MetricsPort = p
		}
	}
	if v := os.Getenv("LEXNAME_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("LEXNAME_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LEXNAME_LOG_PRETTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogPretty = b
		}
	}
	if v := os.Getenv("LEXNAME_TAXONOMY_PATH"); v != "" {
		cfg.TaxonomyPath = v
	}
}
