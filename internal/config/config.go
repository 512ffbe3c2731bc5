// Package config provides configuration types and defaults for audioreg.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. AUDIOREG_LOG_LEVEL.
const EnvPrefix = "AUDIOREG"

// Config holds all configuration options for audioreg.
type Config struct {
	Bank      BankConfig      `mapstructure:"bank"`
	Log       LogConfig       `mapstructure:"log"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// BankConfig selects the event bank served by the simulated engine.
type BankConfig struct {
	// Path to a YAML bank manifest. Empty uses the embedded default bank.
	Path string `mapstructure:"path"`

	// DescriptionCacheTTL bounds how long resolved event descriptions are
	// reused. Zero caches until the bank is reloaded.
	DescriptionCacheTTL time.Duration `mapstructure:"description_cache_ttl"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`  // empty logs to stderr
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// WatchConfig controls reruns in `run --watch`.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	// Exporter selects where spans go.
	// Valid values: "" (disabled), "stdout", "otlp"
	Exporter string `mapstructure:"exporter"`

	// File receives stdout exporter output. Empty writes to stderr.
	File string `mapstructure:"file"`

	// Endpoint is the OTLP gRPC collector address (host:port).
	Endpoint string `mapstructure:"endpoint"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Bank: BankConfig{
			DescriptionCacheTTL: 5 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
		Telemetry: TelemetryConfig{
			Endpoint: "localhost:4317",
		},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Bank.DescriptionCacheTTL < 0 {
		return fmt.Errorf("bank.description_cache_ttl must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	switch c.Telemetry.Exporter {
	case "", "stdout":
	case "otlp":
		if c.Telemetry.Endpoint == "" {
			return fmt.Errorf("telemetry.endpoint is required for the otlp exporter")
		}
	default:
		return fmt.Errorf("telemetry.exporter %q: must be empty, stdout or otlp", c.Telemetry.Exporter)
	}
	return nil
}

// SetDefaults registers Defaults() with v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("bank.path", d.Bank.Path)
	v.SetDefault("bank.description_cache_ttl", d.Bank.DescriptionCacheTTL)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("telemetry.exporter", d.Telemetry.Exporter)
	v.SetDefault("telemetry.file", d.Telemetry.File)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
}

// Load reads configuration into a Config. An explicit configPath must exist;
// otherwise the default location is used if present. Environment variables
// prefixed with EnvPrefix override file values.
func Load(v *viper.Viper, configPath string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	} else if path := DefaultConfigPath(); fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/audioreg/config.yaml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".audioreg", "config.yaml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "audioreg", "config.yaml")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# audioreg configuration

bank:
  # YAML bank manifest served by the simulated engine.
  # Leave empty to use the built-in default bank.
  # path: /path/to/bank.yaml

  # How long resolved event descriptions are cached (0 = until reload)
  description_cache_ttl: 5m

log:
  # Log file (default: stderr)
  # path: /tmp/audioreg.log
  level: info            # debug, info, warn, error

watch:
  # Quiet period before 'run --watch' reruns a changed script or bank
  debounce: 250ms

telemetry:
  # Span exporter: "" (disabled), stdout, otlp
  exporter: ""
  # file: /tmp/audioreg-traces.json   # stdout exporter target (default: stderr)
  # endpoint: localhost:4317          # otlp collector
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
