package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(yaml), 0644)
	require.NoError(t, err)
	return configPath
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	configPath := writeConfig(t, `
bank:
  path: /srv/banks/game.yaml
  description_cache_ttl: 30s
log:
  level: debug
telemetry:
  exporter: stdout
  file: /tmp/traces.json
`)

	cfg, err := Load(viper.New(), configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/banks/game.yaml", cfg.Bank.Path)
	assert.Equal(t, 30*time.Second, cfg.Bank.DescriptionCacheTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stdout", cfg.Telemetry.Exporter)
	assert.Equal(t, "/tmp/traces.json", cfg.Telemetry.File)

	// Unset keys keep their defaults.
	assert.Equal(t, Defaults().Watch.Debounce, cfg.Watch.Debounce)
	assert.Equal(t, Defaults().Telemetry.Endpoint, cfg.Telemetry.Endpoint)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	configPath := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("AUDIOREG_LOG_LEVEL", "error")

	cfg, err := Load(viper.New(), configPath)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	configPath := writeConfig(t, "telemetry:\n  exporter: zipkin\n")

	_, err := Load(viper.New(), configPath)
	require.ErrorContains(t, err, "telemetry.exporter")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative cache ttl", func(c *Config) { c.Bank.DescriptionCacheTTL = -time.Second }, "description_cache_ttl"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -1 }, "watch.debounce"},
		{"otlp without endpoint", func(c *Config) {
			c.Telemetry.Exporter = "otlp"
			c.Telemetry.Endpoint = ""
		}, "telemetry.endpoint"},
		{"otlp with endpoint", func(c *Config) { c.Telemetry.Exporter = "otlp" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDefaultConfigPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.Equal(t, filepath.Join(dir, "audioreg", "config.yaml"), DefaultConfigPath())
}

// TestDefaultConfigTemplate_LoadsAsDefaults keeps the template in sync with Defaults.
func TestDefaultConfigTemplate_LoadsAsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	cfg, err := Load(viper.New(), configPath)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}
