package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Analyzer, cfg.Analyzer)
	assert.Equal(t, DefaultConfig().Batch.Workers, cfg.Batch.Workers)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := `
analyzer:
  max_input_size: 4096
  symbol_threshold: 0.25
batch:
  workers: 2
  extensions: [".txt"]
cache:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.Analyzer.MaxInputSize)
	assert.Equal(t, 0.25, cfg.Analyzer.SymbolThreshold)
	assert.Equal(t, 2, cfg.Batch.Workers)
	assert.Equal(t, []string{".txt"}, cfg.Batch.Extensions)
	assert.False(t, cfg.Cache.Enabled)
	// Untouched sections keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"negative size", "analyzer:\n  max_input_size: -1\n"},
		{"threshold too high", "analyzer:\n  symbol_threshold: 1.0\n"},
		{"zero workers", "batch:\n  workers: 0\n"},
		{"bad log level", "logging:\n  level: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.payload), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analyzer: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAYALEGAL_CACHE_DB", "/tmp/override.db")
	t.Setenv("MAYALEGAL_MAX_INPUT_SIZE", "2048")
	t.Setenv("MAYALEGAL_WORKERS", "9")
	t.Setenv("MAYALEGAL_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override.db", cfg.Cache.Path)
	assert.Equal(t, 2048, cfg.Analyzer.MaxInputSize)
	assert.Equal(t, 9, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverrides_IgnoreGarbage(t *testing.T) {
	t.Setenv("MAYALEGAL_MAX_INPUT_SIZE", "not-a-number")
	t.Setenv("MAYALEGAL_WORKERS", "-3")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Analyzer.MaxInputSize, cfg.Analyzer.MaxInputSize)
	assert.Equal(t, DefaultConfig().Batch.Workers, cfg.Batch.Workers)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	orig := DefaultConfig()
	orig.Analyzer.MaxInputSize = 8192
	require.NoError(t, orig.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8192, loaded.Analyzer.MaxInputSize)
}
