package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/wildcard/internal/logging"
	"github.com/GriffinCanCode/wildcard/internal/pathset"
	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// ErrUnsupportedFormat is returned by LoadFile for an unknown file extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds all application configuration.
type Config struct {
	Logging LogConfig     `yaml:"logging" toml:"logging"`
	Scan    ScanConfig    `yaml:"scan" toml:"scan"`
	Archive ArchiveConfig `yaml:"archive" toml:"archive"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"WILDCARD_LOG_LEVEL" default:"info" yaml:"level" toml:"level"`
	Development bool   `envconfig:"WILDCARD_LOG_DEV" default:"false" yaml:"development" toml:"development"`
}

// ScanConfig holds pattern matching configuration.
type ScanConfig struct {
	DefaultExcludes []string `envconfig:"WILDCARD_DEFAULT_EXCLUDES" yaml:"default_excludes" toml:"default_excludes"`
	IgnoreCase      bool     `envconfig:"WILDCARD_IGNORE_CASE" default:"false" yaml:"ignore_case" toml:"ignore_case"`
}

// ArchiveConfig holds archive configuration.
type ArchiveConfig struct {
	TarCompression string `envconfig:"WILDCARD_TAR_COMPRESSION" default:"gzip" yaml:"tar_compression" toml:"tar_compression"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	OutputPath string `envconfig:"WILDCARD_METRICS_OUT" yaml:"output_path" toml:"output_path"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Scan: ScanConfig{
			IgnoreCase: false,
		},
		Archive: ArchiveConfig{
			TarCompression: "gzip",
		},
	}
}

// LoadFile overlays the YAML (.yaml, .yml) or TOML (.toml) file at path on
// a copy of base. Keys missing from the file keep their value from base.
func LoadFile(path string, base *Config) (*Config, error) {
	if base == nil {
		base = Default()
	}
	cfg := *base
	cfg.Scan.DefaultExcludes = append([]string(nil), base.Scan.DefaultExcludes...)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &cfg, nil
}

// Validate checks values that are free-form strings in the environment.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := pathset.ParseCompression(c.Archive.TarCompression); err != nil {
		return err
	}
	return nil
}
