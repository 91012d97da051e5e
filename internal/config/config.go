// Package config loads the analyzer configuration from YAML with
// environment overrides. Missing files fall back to full defaults; a file
// that exists but fails validation aborts startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all mayalegal configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Analyzer core limits
	Analyzer AnalyzerConfig `yaml:"analyzer"`

	// Result cache
	Cache CacheConfig `yaml:"cache"`

	// Batch processing
	Batch BatchConfig `yaml:"batch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// AnalyzerConfig carries the immutable core parameters.
type AnalyzerConfig struct {
	// MaxInputSize is the largest accepted document in bytes.
	MaxInputSize int `yaml:"max_input_size"`

	// SymbolThreshold is the normalized score above which secondary
	// categories appear in the symbol output.
	SymbolThreshold float64 `yaml:"symbol_threshold"`
}

// CacheConfig configures the SQLite result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// BatchConfig configures the batch driver.
type BatchConfig struct {
	// Workers bounds concurrent document analyses.
	Workers int `yaml:"workers"`

	// Extensions lists the document suffixes discovered in batch mode.
	Extensions []string `yaml:"extensions"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "mayalegal",
		Version: "0.1.0",

		Analyzer: AnalyzerConfig{
			MaxInputSize:    1 << 20, // 1 MiB
			SymbolThreshold: 0.1,
		},

		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(".mayalegal", "cache.db"),
		},

		Batch: BatchConfig{
			Workers:    4,
			Extensions: []string{".txt", ".md"},
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file returns the
// defaults; any other read or parse failure is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("MAYALEGAL_CACHE_DB"); path != "" {
		c.Cache.Path = path
	}
	if v := os.Getenv("MAYALEGAL_MAX_INPUT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Analyzer.MaxInputSize = n
		}
	}
	if v := os.Getenv("MAYALEGAL_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Batch.Workers = n
		}
	}
	if lvl := os.Getenv("MAYALEGAL_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
}

// Validate checks the configuration. Failures here are fatal at startup:
// the core cannot guarantee reproducible results under malformed limits.
func (c *Config) Validate() error {
	if c.Analyzer.MaxInputSize <= 0 {
		return fmt.Errorf("analyzer.max_input_size must be positive, got %d", c.Analyzer.MaxInputSize)
	}
	if c.Analyzer.SymbolThreshold < 0 || c.Analyzer.SymbolThreshold >= 1 {
		return fmt.Errorf("analyzer.symbol_threshold must be in [0,1), got %v", c.Analyzer.SymbolThreshold)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if len(c.Batch.Extensions) == 0 {
		return fmt.Errorf("batch.extensions must not be empty")
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("cache.path required when cache is enabled")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}
	return nil
}
